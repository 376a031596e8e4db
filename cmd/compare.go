package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	compound "github.com/MatthewLSnell/Compound-Interest-Calculator"
	"github.com/MatthewLSnell/Compound-Interest-Calculator/renderer"
	"github.com/google/subcommands"
)

// compareCmd holds the flags for the 'compare' subcommand.
type compareCmd struct {
	scenario scenarioFlags
	rates    string
}

func (*compareCmd) Name() string     { return "compare" }
func (*compareCmd) Synopsis() string { return "compare one scenario across several annual rates" }
func (*compareCmd) Usage() string {
	return `cic compare -rates <p1,p2,...> [scenario flags]

  Projects the same scenario at each of the given annual rates and
  displays the outcomes side by side.

Usage Examples:
# How much does the rate matter over 20 years?
$ cic compare -rates 3,5,7 -years 20
`
}

func (c *compareCmd) SetFlags(f *flag.FlagSet) {
	c.scenario.SetFlags(f)
	f.StringVar(&c.rates, "rates", "3,5,7", "comma-separated annual rates in percent")
}

func (c *compareCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	scenario, err := c.scenario.Scenario()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing scenario: %v\n", err)
		return subcommands.ExitUsageError
	}

	var projections []*compound.Projection
	for _, field := range strings.Split(c.rates, ",") {
		rate, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing rate %q: %v\n", field, err)
			return subcommands.ExitUsageError
		}
		projection, err := compound.Project(scenario.WithRate(compound.Percent(rate)))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error projecting at %v%%: %v\n", rate, err)
			return subcommands.ExitFailure
		}
		projections = append(projections, &projection)
	}

	printMarkdown(renderer.CompareMarkdown(projections))
	return subcommands.ExitSuccess
}
