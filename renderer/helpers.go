package renderer

import (
	"bytes"
	"io"
	"math"
	"strconv"

	"github.com/Rhymond/go-money"
	"github.com/etnz/captable"
	md "github.com/nao1215/markdown"
)

// ConditionalBlock let you fully write a block and decide at the end to print it or not.
// If the block function returns true, the content is printed to w, otherwise it is discarded.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) {
	bw := &bytes.Buffer{}
	if block(bw) {
		io.Copy(w, bw)
	}
}

// shareFormatter groups thousands with commas and prints no currency.
var shareFormatter = money.NewFormatter(0, ".", ",", "", "1")

// formatShares rounds a share count to whole shares, "10,000,000".
func formatShares(s captable.Shares) string {
	return shareFormatter.Format(s.Round())
}

// formatPrice prints a price per share with 4 significant digits and at
// least 4 decimals: "$0.7143", "$0.0000005000".
func formatPrice(m captable.Money) string {
	if m.IsZero() {
		return "-"
	}
	grapheme := ""
	if cur := money.GetCurrency(m.Currency()); cur != nil {
		grapheme = cur.Grapheme
	}
	p := m.AsFloat()
	decimals := 4
	if lead := int(math.Floor(math.Log10(math.Abs(p)))); 3-lead > decimals {
		decimals = 3 - lead
	}
	if decimals == 4 {
		return grapheme + money.NewFormatter(4, ".", ",", "", "1").Format(int64(math.Round(p*1e4)))
	}
	return grapheme + strconv.FormatFloat(p, 'f', decimals, 64)
}

// formatMillions prints amounts in millions like the dashboard columns, "-" for zero.
func formatMillions(m captable.Money) string {
	if m.IsZero() {
		return "-"
	}
	return m.Millions()
}

// roundName adds the skipped marker to the round label.
func roundName(s captable.RoundSnapshot) string {
	if s.Skipped {
		return s.Label + " (skipped)"
	}
	return s.Label
}

// table writes a table keeping the header case, the library upper-cases
// headers by default.
func table(doc *md.Markdown, header []string, rows [][]string) {
	doc.CustomTable(md.TableSet{Header: header, Rows: rows}, md.TableOptions{AutoFormatHeaders: false})
}
