package renderer

import (
	"bytes"
	"strconv"

	compound "github.com/MatthewLSnell/Compound-Interest-Calculator"
	md "github.com/nao1215/markdown"
)

// BreakdownMarkdown renders the year-by-year table followed by the growth
// chart.
func BreakdownMarkdown(records []compound.YearRecord) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Annual Breakdown")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Year", "Start Balance", "Interest", "Contributions", "End Balance", "Total Contributions", "Total Interest"},
		Rows:   [][]string{},
	}
	for _, y := range records {
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(y.Year),
			y.StartBalance.String(),
			y.Interest.String(),
			y.Contributions.String(),
			y.EndBalance.String(),
			y.TotalContributions.String(),
			y.TotalInterest.String(),
		})
	}
	doc.Table(table)

	doc.H2("Yearly Investment Breakdown")
	doc.PlainText("Cumulative contributions (█) and cumulative interest (░) per year.")
	doc.CodeBlocks(md.SyntaxHighlightText, Chart(records))

	return doc.String()
}
