package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	compound "github.com/MatthewLSnell/Compound-Interest-Calculator"
	"github.com/MatthewLSnell/Compound-Interest-Calculator/renderer"
	"github.com/google/subcommands"
)

// breakdownCmd holds the flags for the 'breakdown' subcommand.
type breakdownCmd struct {
	scenario scenarioFlags
	jsonOut  bool
	summary  bool
}

func (*breakdownCmd) Name() string     { return "breakdown" }
func (*breakdownCmd) Synopsis() string { return "display a year-by-year breakdown of an investment scenario" }
func (*breakdownCmd) Usage() string {
	return `cic breakdown [scenario flags] [-summary]

  Simulates the scenario year by year and displays, for each year, the
  start balance, the interest credited, the contributions made, and the
  end balance, with running totals and a growth chart.

Usage Examples:
# Year-by-year view of the default savings plan.
$ cic breakdown

# Prepend the future-value summary to the table.
$ cic breakdown -summary -years 25 -rate 6
`
}

func (c *breakdownCmd) SetFlags(f *flag.FlagSet) {
	c.scenario.SetFlags(f)
	f.BoolVar(&c.jsonOut, "json", false, "print the breakdown as JSON instead of a report")
	f.BoolVar(&c.summary, "summary", false, "also display the future-value summary above the table")
}

func (c *breakdownCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	scenario, err := c.scenario.Scenario()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing scenario: %v\n", err)
		return subcommands.ExitUsageError
	}

	records, err := compound.Breakdown(scenario)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error simulating scenario: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.jsonOut {
		out, err := json.Marshal(records)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding breakdown: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println(string(out))
		return subcommands.ExitSuccess
	}

	var md string
	if c.summary {
		projection, err := compound.Project(scenario)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error projecting scenario: %v\n", err)
			return subcommands.ExitFailure
		}
		md = renderer.ProjectionMarkdown(&projection)
	}
	md += renderer.BreakdownMarkdown(records)

	printMarkdown(md)
	return subcommands.ExitSuccess
}
