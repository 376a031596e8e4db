package renderer

import (
	"fmt"
	"strings"

	compound "github.com/MatthewLSnell/Compound-Interest-Calculator"
)

// chartWidth is the length of the longest bar in runes.
const chartWidth = 40

// Chart draws the stacked bar chart of the breakdown: one bar per year,
// cumulative contributions stacked with cumulative interest, scaled so the
// last (largest) bar fills the chart width.
func Chart(records []compound.YearRecord) string {
	if len(records) == 0 {
		return ""
	}

	max := 0.0
	for _, y := range records {
		if total := y.TotalContributions.AsFloat() + y.TotalInterest.AsFloat(); total > max {
			max = total
		}
	}

	var b strings.Builder
	for _, y := range records {
		contributions := y.TotalContributions.AsFloat()
		interest := y.TotalInterest.AsFloat()

		fmt.Fprintf(&b, "%4d %s%s %s\n",
			y.Year,
			strings.Repeat("█", scaled(contributions, max)),
			strings.Repeat("░", scaled(interest, max)),
			y.EndBalance,
		)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// scaled maps a value to its rune count, never rounding a positive value
// down to an empty segment.
func scaled(value, max float64) int {
	if max <= 0 || value <= 0 {
		return 0
	}
	n := int(value/max*chartWidth + 0.5)
	if n == 0 {
		n = 1
	}
	return n
}
