package compound

import (
	"encoding/json"
	"math"
	"testing"
)

func TestProject_LumpSumOnly(t *testing.T) {
	// With no contributions the projection must reduce to the textbook
	// formula P(1+r/n)^(nt): 1000 at 12% compounded monthly for one year.
	s := NewScenario("USD", 1000, 0, 1, 12, Monthly, Monthly)

	p, err := Project(s)
	if err != nil {
		t.Fatalf("Project() returned unexpected error: %v", err)
	}

	if want := M(1126.83, "USD"); !p.FutureValue.Equal(want) {
		t.Errorf("FutureValue = %s, want %s", p.FutureValue, want)
	}
	if !p.Contributions.IsZero() {
		t.Errorf("Contributions = %s, want zero", p.Contributions)
	}
	if !p.Interest.Equal(p.FutureValue) {
		t.Errorf("Interest = %s, want %s (future value minus zero contributions)", p.Interest, p.FutureValue)
	}
}

func TestProject_ZeroRate(t *testing.T) {
	// At 0% the contributions do not grow: the future value is just the
	// principal plus contribution x number of deposits.
	s := NewScenario("USD", 500, 100, 2, 0, Monthly, Monthly)

	p, err := Project(s)
	if err != nil {
		t.Fatalf("Project() returned unexpected error: %v", err)
	}

	if want := M(2900, "USD"); !p.FutureValue.Equal(want) {
		t.Errorf("FutureValue = %s, want %s", p.FutureValue, want)
	}
	if want := M(2400, "USD"); !p.Contributions.Equal(want) {
		t.Errorf("Contributions = %s, want %s", p.Contributions, want)
	}
	if want := M(500, "USD"); !p.Interest.Equal(want) {
		t.Errorf("Interest = %s, want %s (the principal, counted as growth)", p.Interest, want)
	}
}

func TestProject_ContributionsOnly(t *testing.T) {
	// 100 every month at 12% compounded monthly for a year is a plain
	// ordinary annuity: 100 x (1.01^12 - 1)/0.01 = 1268.25.
	s := NewScenario("USD", 0, 100, 1, 12, Monthly, Monthly)

	p, err := Project(s)
	if err != nil {
		t.Fatalf("Project() returned unexpected error: %v", err)
	}

	if want := M(1268.25, "USD"); !p.FutureValue.Equal(want) {
		t.Errorf("FutureValue = %s, want %s", p.FutureValue, want)
	}
	if want := M(1200, "USD"); !p.Contributions.Equal(want) {
		t.Errorf("Contributions = %s, want %s", p.Contributions, want)
	}
	if want := M(68.25, "USD"); !p.Interest.Equal(want) {
		t.Errorf("Interest = %s, want %s", p.Interest, want)
	}
}

func TestProject_InterestIsFutureValueMinusContributions(t *testing.T) {
	testCases := []struct {
		name string
		s    Scenario
	}{
		{"aligned schedules", NewScenario("USD", 1000, 50, 10, 5, Monthly, Monthly)},
		{"deposits more frequent", NewScenario("USD", 1000, 50, 10, 5, Annually, Monthly)},
		{"compounding more frequent", NewScenario("USD", 1000, 50, 10, 5, Daily, Monthly)},
		{"zero principal", NewScenario("USD", 0, 50, 3, 7, Quarterly, Weekly)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := Project(tc.s)
			if err != nil {
				t.Fatalf("Project() returned unexpected error: %v", err)
			}
			if got := p.FutureValue.Sub(p.Contributions); !got.Equal(p.Interest) {
				t.Errorf("FutureValue - Contributions = %s, want Interest = %s", got, p.Interest)
			}
			if p.Interest.IsNegative() {
				t.Errorf("Interest = %s, must not be negative for a non-negative rate", p.Interest)
			}
		})
	}
}

func TestProject_RejectsInvalidScenarios(t *testing.T) {
	testCases := []struct {
		name string
		s    Scenario
	}{
		{"zero compounding frequency", Scenario{Principal: M(1000, "USD"), Years: 1, Rate: 5, Compounding: 0, Deposits: Monthly}},
		{"zero deposits frequency", Scenario{Principal: M(1000, "USD"), Years: 1, Rate: 5, Compounding: Monthly, Deposits: 0}},
		{"zero years", NewScenario("USD", 1000, 50, 0, 5, Monthly, Monthly)},
		{"negative principal", NewScenario("USD", -1, 50, 1, 5, Monthly, Monthly)},
		{"negative contribution", NewScenario("USD", 1000, -50, 1, 5, Monthly, Monthly)},
		{"negative rate", NewScenario("USD", 1000, 50, 1, -5, Monthly, Monthly)},
		{"currency mismatch", Scenario{Principal: M(1000, "USD"), Contribution: M(50, "EUR"), Years: 1, Rate: 5, Compounding: Monthly, Deposits: Monthly}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Project(tc.s); err == nil {
				t.Errorf("Project() = nil error, want validation error")
			}
		})
	}
}

func TestAnnuityFactor_IsAffineSlope(t *testing.T) {
	// Doubling the contribution must add exactly contribution x factor to
	// the unrounded future value.
	s := NewScenario("USD", 1000, 100, 5, 6, Monthly, Quarterly)

	p1, err := Project(s)
	if err != nil {
		t.Fatalf("Project() returned unexpected error: %v", err)
	}
	p2, err := Project(s.WithContribution(M(200, "USD")))
	if err != nil {
		t.Fatalf("Project() returned unexpected error: %v", err)
	}

	gained := p2.FutureValue.Sub(p1.FutureValue).AsFloat()
	if want := 100 * annuityFactor(s); math.Abs(gained-want) > 0.011 {
		t.Errorf("future value gained %v per extra 100, want %v", gained, want)
	}
}

func TestProjection_MarshalJSON(t *testing.T) {
	s := NewScenario("USD", 1000, 0, 1, 12, Monthly, Monthly)
	p, err := Project(s)
	if err != nil {
		t.Fatalf("Project() returned unexpected error: %v", err)
	}

	got, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal() returned unexpected error: %v", err)
	}
	want := `{"scenario":{"principal":{"currency":"USD","amount":"1000"},"contribution":{"currency":"USD","amount":"0"},"years":1,"ratePercent":12,"compoundingPerYear":12,"depositsPerYear":12},"futureValue":{"currency":"USD","amount":"1126.83"},"contributions":{"currency":"USD","amount":"0"},"interest":{"currency":"USD","amount":"1126.83"}}`
	if string(got) != want {
		t.Errorf("Marshal() = %s, want %s", got, want)
	}
}
