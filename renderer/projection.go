package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/captable"
	md "github.com/nao1215/markdown"
)

// DilutionMarkdown renders the founder ownership after each round selling
// perRound of the company, Founder % = (1-s)^n.
func DilutionMarkdown(perRound captable.Percent, founder []captable.Percent) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Founder Dilution at %s per Round", perRound))
	var rows [][]string
	for n, own := range founder {
		rows = append(rows, []string{fmt.Sprint(n), own.String(), (own - 100).SignedString()})
	}
	table(doc, []string{"Rounds", "Founder", "Dilution"}, rows)
	return doc.String()
}

// ProRataInvestmentMarkdown renders the pro-rata investment needed to keep
// ownership through a round of roundSize.
func ProRataInvestmentMarkdown(ownership captable.Percent, roundSize captable.Money) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2("Pro-Rata Investment")
	doc.PlainText(fmt.Sprintf("To keep %s through a %s round, invest %s.", ownership, roundSize, captable.ProRataInvestment(ownership, roundSize)))
	return doc.String()
}
