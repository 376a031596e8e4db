// Package cmd implements the CLI application to project compound interest.
package cmd

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&projectCmd{}, "projections")
	c.Register(&breakdownCmd{}, "projections")
	c.Register(&compareCmd{}, "projections")

	c.Register(&goalCmd{}, "planning")
	c.Register(&assistCmd{}, "planning")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var rawMarkdown = flag.Bool("raw", false, "print reports as raw markdown instead of rendering them for the terminal")

// printMarkdown renders a markdown report on the terminal, falling back to
// the raw text when rendering is not possible.
func printMarkdown(md string) {
	if *rawMarkdown {
		fmt.Print(md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
