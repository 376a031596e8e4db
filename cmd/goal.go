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

// goalCmd holds the flags for the 'goal' subcommand.
type goalCmd struct {
	scenario scenarioFlags
	target   float64
	jsonOut  bool
}

func (*goalCmd) Name() string     { return "goal" }
func (*goalCmd) Synopsis() string { return "compute the contribution needed to reach a target value" }
func (*goalCmd) Usage() string {
	return `cic goal -target <amount> [scenario flags]

  Computes the recurring contribution required for the scenario to reach
  the target future value at the end of its horizon. The -contribution
  flag is ignored.

Usage Examples:
# What does 100k in ten years take, starting from nothing?
$ cic goal -target 100000 -principal 0
`
}

func (c *goalCmd) SetFlags(f *flag.FlagSet) {
	c.scenario.SetFlags(f)
	f.Float64Var(&c.target, "target", 0, "target future value to reach")
	f.BoolVar(&c.jsonOut, "json", false, "print the goal as JSON instead of a report")
}

func (c *goalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	scenario, err := c.scenario.Scenario()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing scenario: %v\n", err)
		return subcommands.ExitUsageError
	}

	goal, err := compound.SolveContribution(scenario, compound.M(c.target, scenario.Currency()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error solving for contribution: %v\n", err)
		return subcommands.ExitUsageError
	}

	if c.jsonOut {
		out, err := json.Marshal(goal)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding goal: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println(string(out))
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.GoalMarkdown(&goal))
	return subcommands.ExitSuccess
}
