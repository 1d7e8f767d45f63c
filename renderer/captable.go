package renderer

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/captable"
	md "github.com/nao1215/markdown"
)

// CapTableMarkdown renders the cap table: one row per round with
// valuations and the ownership of every stakeholder, then the share counts,
// the pro-rata top-ups if any, and the summary.
func CapTableMarkdown(ct *captable.CapTable) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Cap Table (%s)", ct.Policy))
	doc.PlainText(fmt.Sprintf("Founder shares: %s, currency: %s", formatShares(ct.FounderShares), ct.Currency))

	ids := ct.Stakeholders()

	header := []string{"Round", "Pre-Money", "Investment", "Post-Money", "Price/Share", "New Shares", "Total Shares"}
	for _, id := range ids {
		header = append(header, id.Label()+" %")
	}
	var rows [][]string
	for _, s := range ct.Snapshots {
		row := []string{
			roundName(s),
			formatMillions(s.PreMoney),
			formatMillions(s.Investment),
			formatMillions(s.PostMoney),
			formatPrice(s.PricePerShare),
			formatShares(s.NewShares),
			formatShares(s.TotalShares()),
		}
		for _, id := range ids {
			row = append(row, ownershipCell(s, id))
		}
		rows = append(rows, row)
	}
	doc.H2("Ownership")
	table(doc, header, rows)

	doc.H2("Shares")
	header = []string{"Round"}
	for _, id := range ids {
		header = append(header, id.Label())
	}
	rows = nil
	for _, s := range ct.Snapshots {
		row := []string{roundName(s)}
		for _, id := range ids {
			if !s.Has(id) {
				row = append(row, "-")
				continue
			}
			row = append(row, formatShares(s.Shares(id)))
		}
		rows = append(rows, row)
	}
	table(doc, header, rows)

	var b strings.Builder
	b.WriteString(doc.String())
	b.WriteString("\n")
	TopUpsMarkdown(&b, ct)
	SummaryMarkdown(&b, ct.Summary())
	return b.String()
}

// ownershipCell prints "-" for stakeholders that do not exist yet.
func ownershipCell(s captable.RoundSnapshot, id captable.StakeholderID) string {
	if !s.Has(id) {
		return "-"
	}
	return s.Ownership(id).String()
}

// TopUpsMarkdown writes the pro-rata top-ups of every round. Nothing is
// written when no holder topped up.
func TopUpsMarkdown(w io.Writer, ct *captable.CapTable) {
	ConditionalBlock(w, func(w io.Writer) bool {
		fmt.Fprintln(w, "## Pro-Rata Top-Ups")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "| Round | Stakeholder | Shares | Investment |")
		fmt.Fprintln(w, "|:---|:---|---:|---:|")
		found := false
		for _, s := range ct.Snapshots {
			ups := s.TopUps()
			for _, id := range s.Stakeholders() {
				if _, ok := ups[id]; !ok {
					continue
				}
				found = true
				fmt.Fprintf(w, "| %s | %s | %s | %s |\n", s.Label, id.Label(), formatShares(s.TopUp(id)), s.TopUpCost(id))
			}
		}
		fmt.Fprintln(w)
		return found
	})
}

// SummaryMarkdown writes the headline figures of a cap table.
func SummaryMarkdown(w io.Writer, s captable.Summary) {
	fmt.Fprintln(w, "## Summary")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "- Final Valuation: %s\n", formatMillions(s.FinalValuation))
	fmt.Fprintf(w, "- Total Shares: %s\n", formatShares(s.TotalShares))
	fmt.Fprintf(w, "- Founder: %s\n", s.Founder)
	fmt.Fprintf(w, "- Founder Dilution: %s\n", s.FounderDilution)
	if s.HasProtectedInvestor {
		fmt.Fprintf(w, "- Protected Investor: %s at %s\n", s.ProtectedInvestor.Label(), s.ProtectedOwnership)
	}
}
