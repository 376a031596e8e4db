package renderer

import (
	"bytes"
	"fmt"

	compound "github.com/MatthewLSnell/Compound-Interest-Calculator"
	md "github.com/nao1215/markdown"
)

// CompareMarkdown renders one scenario projected at several annual rates,
// side by side.
func CompareMarkdown(projections []*compound.Projection) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Rate Comparison")
	if len(projections) > 0 {
		doc.PlainText(describe(projections[0].Scenario))
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Rate", "Future Value", "Total Contributions", "Total Interest"},
		Rows:   [][]string{},
	}
	for _, p := range projections {
		table.Rows = append(table.Rows, []string{
			p.Scenario.Rate.String(),
			p.FutureValue.String(),
			p.Contributions.String(),
			p.Interest.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}

// GoalMarkdown renders a contribution goal: the required deposit and the
// projection it produces.
func GoalMarkdown(g *compound.Goal) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	s := g.Projection.Scenario
	doc.H1("Contribution Goal")
	doc.PlainText(fmt.Sprintf("To reach %s in %d years at %s compounded %s, contribute %s %s.",
		g.Target, s.Years, s.Rate, s.Compounding, g.Contribution, s.Deposits))

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Required Contribution"),
			md.Bold(g.Contribution.String()),
		},
		Rows: [][]string{
			{"Projected Future Value", g.Projection.FutureValue.String()},
			{"Total Contributions", g.Projection.Contributions.String()},
			{"Total Interest", g.Projection.Interest.String()},
		},
	})

	return doc.String()
}
