package compound

import (
	"fmt"
	"math"
)

// Goal is the contribution plan required to reach a target future value.
type Goal struct {
	Target       Money
	Contribution Money // required recurring contribution, rounded up to the cent
	Projection   Projection
}

// SolveContribution returns the recurring contribution that makes the
// scenario reach target at the end of its horizon. The scenario's own
// Contribution field is ignored.
//
// Since Project's future value is principal growth plus contribution times
// annuityFactor, the solution is a direct division rather than a search.
// The result is rounded up to the cent so the projected value never falls
// short of the target; a zero contribution is returned when the principal
// alone already reaches it.
func SolveContribution(s Scenario, target Money) (Goal, error) {
	s.Contribution = M(0, s.Currency())
	if err := s.Validate(); err != nil {
		return Goal{}, err
	}
	if target.Currency() != "" && target.Currency() != s.Currency() {
		return Goal{}, fmt.Errorf("target currency %s does not match scenario currency %s", target.Currency(), s.Currency())
	}
	if !target.IsPositive() {
		return Goal{}, fmt.Errorf("target must be positive, got %s", target)
	}

	r := s.Rate.Rate()
	n := float64(s.Compounding.PerYear())
	t := float64(s.Years)
	principalFV := s.Principal.AsFloat() * math.Pow(1+r/n, n*t)

	contribution := 0.0
	if missing := target.AsFloat() - principalFV; missing > 0 {
		contribution = math.Ceil(missing/annuityFactor(s)*100) / 100
	}

	s = s.WithContribution(M(contribution, s.Currency()))
	projection, err := Project(s)
	if err != nil {
		return Goal{}, err
	}
	return Goal{
		Target:       target,
		Contribution: s.Contribution,
		Projection:   projection,
	}, nil
}

func (g Goal) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("target", g.Target)
	w.Append("contribution", g.Contribution)
	w.Append("projection", g.Projection)
	return w.MarshalJSON()
}
