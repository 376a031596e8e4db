package compound

import "fmt"

// Percent is an annual rate expressed in percent (5 means 5% per year).
type Percent float64

// Rate returns the rate as a decimal fraction (5% -> 0.05).
func (p Percent) Rate() float64 { return float64(p) / 100 }

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}
