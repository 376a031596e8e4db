package compound

import (
	"fmt"
	"strconv"
	"strings"
)

// Frequency is a number of credit events per year, for interest compounding
// or for contributions.
type Frequency int

const (
	Annually     Frequency = 1
	Semiannually Frequency = 2
	Quarterly    Frequency = 4
	Monthly      Frequency = 12
	Biweekly     Frequency = 26
	Weekly       Frequency = 52
	Daily        Frequency = 365
)

func (f Frequency) PerYear() int { return int(f) }

func (f Frequency) String() string {
	switch f {
	case Annually:
		return "annually"
	case Semiannually:
		return "semiannually"
	case Quarterly:
		return "quarterly"
	case Monthly:
		return "monthly"
	case Biweekly:
		return "biweekly"
	case Weekly:
		return "weekly"
	case Daily:
		return "daily"
	default:
		return fmt.Sprintf("%d times per year", int(f))
	}
}

// ParseFrequency accepts a schedule name ("monthly") or a plain count per
// year ("12").
func ParseFrequency(s string) (Frequency, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "annually", "annual", "yearly", "year":
		return Annually, nil
	case "semiannually", "semiannual", "half-yearly":
		return Semiannually, nil
	case "quarterly", "quarter":
		return Quarterly, nil
	case "monthly", "month":
		return Monthly, nil
	case "biweekly":
		return Biweekly, nil
	case "weekly", "week":
		return Weekly, nil
	case "daily", "day":
		return Daily, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("unknown frequency %q", s)
	}
	if n < 1 {
		return 0, fmt.Errorf("frequency must be at least once per year, got %d", n)
	}
	return Frequency(n), nil
}

func (f Frequency) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(int(f))), nil
}
