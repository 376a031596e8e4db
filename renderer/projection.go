// Package renderer turns the calculator's result types into markdown
// reports, ready to be rendered on a terminal or published as-is.
package renderer

import (
	"bytes"
	"fmt"

	compound "github.com/MatthewLSnell/Compound-Interest-Calculator"
	md "github.com/nao1215/markdown"
)

// ProjectionMarkdown renders the three summary figures of a projection.
func ProjectionMarkdown(p *compound.Projection) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Compound Interest Projection")
	doc.PlainText(describe(p.Scenario))

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Future Value"),
			md.Bold(p.FutureValue.String()),
		},
		Rows: [][]string{
			{"Total Contributions", p.Contributions.String()},
			{"Total Interest", p.Interest.String()},
		},
	})

	return doc.String()
}

// describe summarizes a scenario in one sentence.
func describe(s compound.Scenario) string {
	return fmt.Sprintf("%s invested for %d years at %s compounded %s, with %s contributed %s.",
		s.Principal, s.Years, s.Rate, s.Compounding, s.Contribution, s.Deposits)
}
