package cmd

import (
	"flag"
	"fmt"

	compound "github.com/MatthewLSnell/Compound-Interest-Calculator"
)

// scenarioFlags holds the investment scenario flags shared by every
// projection command. Defaults match a typical savings plan: 1000 upfront,
// 50 a month, ten years at 5%.
type scenarioFlags struct {
	principal    float64
	contribution float64
	years        int
	rate         float64
	compounding  string
	deposits     string
	currency     string
}

func (s *scenarioFlags) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&s.principal, "principal", 1000, "initial investment amount")
	f.Float64Var(&s.contribution, "contribution", 50, "recurring contribution amount")
	f.IntVar(&s.years, "years", 10, "investment horizon in years")
	f.Float64Var(&s.rate, "rate", 5, "annual interest rate in percent")
	f.StringVar(&s.compounding, "compounding", "monthly", "interest credit schedule (annually, quarterly, monthly, ... or a count per year)")
	f.StringVar(&s.deposits, "deposits", "monthly", "contribution schedule (same formats as -compounding)")
	f.StringVar(&s.currency, "currency", "USD", "ISO 4217 currency code for all amounts")
}

// Scenario parses the flags into a validated scenario.
func (s *scenarioFlags) Scenario() (compound.Scenario, error) {
	compounding, err := compound.ParseFrequency(s.compounding)
	if err != nil {
		return compound.Scenario{}, fmt.Errorf("invalid -compounding: %w", err)
	}
	deposits, err := compound.ParseFrequency(s.deposits)
	if err != nil {
		return compound.Scenario{}, fmt.Errorf("invalid -deposits: %w", err)
	}

	scenario := compound.NewScenario(s.currency, s.principal, s.contribution, s.years, s.rate, compounding, deposits)
	if err := scenario.Validate(); err != nil {
		return compound.Scenario{}, err
	}
	return scenario, nil
}
