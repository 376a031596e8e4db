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

// projectCmd holds the flags for the 'project' subcommand.
type projectCmd struct {
	scenario scenarioFlags
	jsonOut  bool
}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "display the future value of an investment scenario" }
func (*projectCmd) Usage() string {
	return `cic project [-principal <amount>] [-contribution <amount>] [-years <n>] [-rate <percent>] [-compounding <schedule>] [-deposits <schedule>]

  Computes the future value of the scenario, the total nominal
  contributions, and the interest earned over the horizon.

Usage Examples:
# 1000 upfront and 50 a month for ten years at 5%.
$ cic project

# A lump sum left alone for a year at 12%, compounded monthly.
$ cic project -principal 1000 -contribution 0 -years 1 -rate 12
`
}

func (c *projectCmd) SetFlags(f *flag.FlagSet) {
	c.scenario.SetFlags(f)
	f.BoolVar(&c.jsonOut, "json", false, "print the projection as JSON instead of a report")
}

func (c *projectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	scenario, err := c.scenario.Scenario()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing scenario: %v\n", err)
		return subcommands.ExitUsageError
	}

	projection, err := compound.Project(scenario)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error projecting scenario: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.jsonOut {
		out, err := json.Marshal(projection)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding projection: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println(string(out))
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.ProjectionMarkdown(&projection))
	return subcommands.ExitSuccess
}
