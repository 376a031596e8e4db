package compound

import "fmt"

// Scenario describes one investment to project: a lump sum, a recurring
// contribution, and the schedules on which interest and contributions are
// credited. A Scenario is a value, it holds no state between computations.
type Scenario struct {
	Principal    Money     // initial lump-sum investment
	Contribution Money     // amount credited on each deposit
	Years        int       // investment horizon
	Rate         Percent   // annual interest rate
	Compounding  Frequency // interest credits per year
	Deposits     Frequency // contribution credits per year
}

// NewScenario builds a scenario from raw amounts in the given currency.
func NewScenario(currency string, principal, contribution float64, years int, rate float64, compounding, deposits Frequency) Scenario {
	return Scenario{
		Principal:    M(principal, currency),
		Contribution: M(contribution, currency),
		Years:        years,
		Rate:         Percent(rate),
		Compounding:  compounding,
		Deposits:     deposits,
	}
}

// Currency returns the scenario's currency, taken from the principal.
func (s Scenario) Currency() string {
	if s.Principal.Currency() != "" {
		return s.Principal.Currency()
	}
	return s.Contribution.Currency()
}

// Validate rejects scenarios whose projection would be meaningless,
// including the zero compounding frequency that would otherwise divide by
// zero in the rate-per-period computation.
func (s Scenario) Validate() error {
	if s.Principal.IsNegative() {
		return fmt.Errorf("principal must not be negative, got %s", s.Principal)
	}
	if s.Contribution.IsNegative() {
		return fmt.Errorf("contribution must not be negative, got %s", s.Contribution)
	}
	if s.Years < 1 {
		return fmt.Errorf("investment horizon must be at least one year, got %d", s.Years)
	}
	if s.Rate < 0 {
		return fmt.Errorf("annual rate must not be negative, got %s", s.Rate)
	}
	if s.Compounding < 1 {
		return fmt.Errorf("compounding frequency must be at least once per year, got %d", int(s.Compounding))
	}
	if s.Deposits < 1 {
		return fmt.Errorf("contribution frequency must be at least once per year, got %d", int(s.Deposits))
	}
	if p, c := s.Principal.Currency(), s.Contribution.Currency(); p != "" && c != "" && p != c {
		return fmt.Errorf("principal and contribution currencies differ: %s vs %s", p, c)
	}
	return nil
}

// WithRate returns a copy of the scenario with another annual rate.
func (s Scenario) WithRate(rate Percent) Scenario {
	s.Rate = rate
	return s
}

// WithContribution returns a copy of the scenario with another recurring
// contribution amount.
func (s Scenario) WithContribution(c Money) Scenario {
	s.Contribution = c
	return s
}

func (s Scenario) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("principal", s.Principal)
	w.Append("contribution", s.Contribution)
	w.Append("years", s.Years)
	w.Append("ratePercent", float64(s.Rate))
	w.Append("compoundingPerYear", s.Compounding)
	w.Append("depositsPerYear", s.Deposits)
	return w.MarshalJSON()
}
