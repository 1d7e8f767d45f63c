package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/captable"
	md "github.com/nao1215/markdown"
)

// ComparisonMarkdown renders the final ownership of every stakeholder under
// both policies side by side, and the insights drawn from it.
func ComparisonMarkdown(c *captable.Comparison) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	a, b := c.A.Policy.String(), c.B.Policy.String()
	doc.H1(fmt.Sprintf("Comparison: %s vs %s", a, b))

	var rows [][]string
	for _, s := range c.Stakeholders() {
		rows = append(rows, []string{s.ID.Label(), s.A.String(), s.B.String(), s.Delta().SignedString()})
	}
	table(doc, []string{"Stakeholder", a, b, "Difference"}, rows)

	sa, sb := c.A.Summary(), c.B.Summary()
	doc.H2("Insights")
	doc.BulletList(
		fmt.Sprintf("Founder keeps %s with %s and %s with %s.", sa.Founder, a, sb.Founder, b),
		founderDifference(sb.Founder-sa.Founder),
		fmt.Sprintf("Total shares: %s with %s and %s with %s.", formatShares(sa.TotalShares), a, formatShares(sb.TotalShares), b),
	)
	if sb.HasProtectedInvestor {
		doc.PlainText(fmt.Sprintf("With %s, %s keeps %s of the company.", b, sb.ProtectedInvestor.Label(), sb.ProtectedOwnership))
	}
	return doc.String()
}

// founderDifference describes how much more of the company the founder keeps under the second policy.
func founderDifference(d captable.Percent) string {
	if d.Equal(0) {
		return "Founder dilution difference: none."
	}
	return fmt.Sprintf("Founder dilution difference: %s.", d.SignedString())
}
