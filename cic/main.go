package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/MatthewLSnell/Compound-Interest-Calculator/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// a .env file may hold GEMINI_API_KEY for the assist command.
	godotenv.Load()

	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion wires shell completion; it exits early when invoked by the
// shell's completion hook.
func completion() {
	schedules := predict.Set{"annually", "semiannually", "quarterly", "monthly", "biweekly", "weekly", "daily"}
	scenarioFlags := map[string]complete.Predictor{
		"principal":    predict.Nothing,
		"contribution": predict.Nothing,
		"years":        predict.Nothing,
		"rate":         predict.Nothing,
		"compounding":  schedules,
		"deposits":     schedules,
		"currency":     predict.Set{"USD", "EUR", "GBP"},
	}

	cic := &complete.Command{
		Sub: map[string]*complete.Command{
			"project":   {Flags: scenarioFlags},
			"breakdown": {Flags: scenarioFlags},
			"compare":   {Flags: scenarioFlags},
			"goal":      {Flags: scenarioFlags},
			"assist":    {},
			"topic":     {Args: predict.Set{"readme", "formula", "schedules", "goal"}},
		},
		Flags: map[string]complete.Predictor{
			"raw": predict.Nothing,
		},
	}
	cic.Complete("cic")
}
