package compound

// YearRecord is one year of the simulated account.
type YearRecord struct {
	Year               int
	StartBalance       Money
	Interest           Money // interest credited during the year
	Contributions      Money // contributions credited during the year
	EndBalance         Money
	TotalContributions Money // contributions credited since year one
	TotalInterest      Money // interest credited since year one
}

// Breakdown simulates the account year by year.
//
// Within a year the simulation walks the compounding sub-periods: interest
// accrues on the running balance first, then the contributions whose
// scheduled time falls inside the sub-period are credited. Sub-period j
// receives ⌊j·cf/n⌋−⌊(j−1)·cf/n⌋ contributions, so a year always credits
// exactly cf of them whether deposits are more or less frequent than
// compounding.
//
// The final end balance matches Project's future value when the two
// schedules coincide (cf = n). When they differ, Project grants each
// contribution fractional-period growth that this discrete simulation does
// not, and the end balance is slightly lower.
func Breakdown(s Scenario) ([]YearRecord, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	r := s.Rate.Rate()
	n := s.Compounding.PerYear()
	cf := s.Deposits.PerYear()
	c := s.Contribution.AsFloat()

	balance := s.Principal.AsFloat()
	records := make([]YearRecord, 0, s.Years)
	var cumContributions, cumInterest float64

	for year := 1; year <= s.Years; year++ {
		start := balance
		var interest float64
		for j := 1; j <= n; j++ {
			earned := balance * (r / float64(n))
			interest += earned
			balance += earned

			due := (j*cf)/n - ((j-1)*cf)/n
			balance += float64(due) * c
		}
		contributions := c * float64(cf)
		cumContributions += contributions
		cumInterest += interest

		records = append(records, YearRecord{
			Year:               year,
			StartBalance:       M(start, s.Currency()).Round(),
			Interest:           M(interest, s.Currency()).Round(),
			Contributions:      M(contributions, s.Currency()).Round(),
			EndBalance:         M(balance, s.Currency()).Round(),
			TotalContributions: M(cumContributions, s.Currency()).Round(),
			TotalInterest:      M(cumInterest, s.Currency()).Round(),
		})
	}
	return records, nil
}

func (y YearRecord) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("year", y.Year)
	w.Append("startBalance", y.StartBalance)
	w.Append("interest", y.Interest)
	w.Append("contributions", y.Contributions)
	w.Append("endBalance", y.EndBalance)
	w.Append("totalContributions", y.TotalContributions)
	w.Append("totalInterest", y.TotalInterest)
	return w.MarshalJSON()
}
