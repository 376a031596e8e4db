package cmd

import (
	"flag"
	"testing"

	compound "github.com/MatthewLSnell/Compound-Interest-Calculator"
)

func parseScenario(t *testing.T, args ...string) (compound.Scenario, error) {
	t.Helper()
	var s scenarioFlags
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	s.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("Parse(%v) failed: %v", args, err)
	}
	return s.Scenario()
}

func TestScenarioFlags_Defaults(t *testing.T) {
	s, err := parseScenario(t)
	if err != nil {
		t.Fatalf("Scenario() returned unexpected error: %v", err)
	}

	if want := compound.M(1000, "USD"); !s.Principal.Equal(want) {
		t.Errorf("Principal = %s, want %s", s.Principal, want)
	}
	if want := compound.M(50, "USD"); !s.Contribution.Equal(want) {
		t.Errorf("Contribution = %s, want %s", s.Contribution, want)
	}
	if s.Years != 10 {
		t.Errorf("Years = %d, want 10", s.Years)
	}
	if !s.Rate.Equal(5) {
		t.Errorf("Rate = %s, want 5.00%%", s.Rate)
	}
	if s.Compounding != compound.Monthly || s.Deposits != compound.Monthly {
		t.Errorf("schedules = %s/%s, want monthly/monthly", s.Compounding, s.Deposits)
	}
}

func TestScenarioFlags_Schedules(t *testing.T) {
	s, err := parseScenario(t, "-compounding", "365", "-deposits", "biweekly")
	if err != nil {
		t.Fatalf("Scenario() returned unexpected error: %v", err)
	}
	if s.Compounding != compound.Daily {
		t.Errorf("Compounding = %s, want daily", s.Compounding)
	}
	if s.Deposits != compound.Biweekly {
		t.Errorf("Deposits = %s, want biweekly", s.Deposits)
	}
}

func TestScenarioFlags_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{"bad compounding schedule", []string{"-compounding", "sometimes"}},
		{"zero deposits", []string{"-deposits", "0"}},
		{"zero years", []string{"-years", "0"}},
		{"negative principal", []string{"-principal", "-1"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := parseScenario(t, tc.args...); err == nil {
				t.Errorf("Scenario() = nil error, want error")
			}
		})
	}
}
