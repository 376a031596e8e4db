package compound

import "math"

// Projection is the outcome of an investment scenario at the end of its
// horizon.
type Projection struct {
	Scenario      Scenario
	FutureValue   Money // projected balance at the end of the horizon
	Contributions Money // nominal sum of every recurring contribution
	Interest      Money // FutureValue minus Contributions
}

// Project computes the future value of the scenario.
//
// The principal grows by the closed form P·(1+r/n)^(n·t). Each contribution
// is an ordinary-annuity payment credited at the end of its deposit period
// and compounded on the interest schedule for the years remaining until the
// horizon; their future values are summed numerically. The deposit schedule
// does not have to align with the compounding schedule, which makes the
// per-contribution exponent fractional in general.
//
// Interest is defined as the future value minus the nominal contributions,
// so it also carries the growth of the principal. The annual breakdown
// reports interest in the strict sense, per year.
func Project(s Scenario) (Projection, error) {
	if err := s.Validate(); err != nil {
		return Projection{}, err
	}

	r := s.Rate.Rate()
	n := float64(s.Compounding.PerYear())
	t := float64(s.Years)

	principalFV := s.Principal.AsFloat() * math.Pow(1+r/n, n*t)
	contributionFV := s.Contribution.AsFloat() * annuityFactor(s)

	periods := s.Years * s.Deposits.PerYear()

	futureValue := M(principalFV+contributionFV, s.Currency()).Round()
	contributions := M(s.Contribution.AsFloat()*float64(periods), s.Currency()).Round()

	return Projection{
		Scenario:      s,
		FutureValue:   futureValue,
		Contributions: contributions,
		Interest:      futureValue.Sub(contributions),
	}, nil
}

// annuityFactor returns the future value of a 1-unit contribution stream:
// the sum over every deposit period p of (1+r/n)^(n·(t−p/cf)). The future
// value of the scenario is affine in the contribution amount with this
// factor as the slope, which the goal seeker relies on.
func annuityFactor(s Scenario) float64 {
	r := s.Rate.Rate()
	n := float64(s.Compounding.PerYear())
	cf := float64(s.Deposits.PerYear())

	periods := s.Years * s.Deposits.PerYear()
	factor := 0.0
	for p := 1; p <= periods; p++ {
		periodsLeft := float64(periods - p)
		factor += math.Pow(1+r/n, periodsLeft/cf*n)
	}
	return factor
}

func (p Projection) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("scenario", p.Scenario)
	w.Append("futureValue", p.FutureValue)
	w.Append("contributions", p.Contributions)
	w.Append("interest", p.Interest)
	return w.MarshalJSON()
}
