package captable

import (
	"testing"

	"github.com/shopspring/decimal"
)

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// EUR is a helper for test to create euro money from const
func EUR(v float64) Money { return M(v, "EUR") }

// rounds is a helper for test to create investment rounds from
// (pre-money, investment) pairs, numbered from 1.
func rounds(t *testing.T, terms ...[2]float64) []RoundInput {
	t.Helper()
	res := make([]RoundInput, 0, len(terms))
	for i, term := range terms {
		r, err := NewRound(i+1, term[0], term[1], "USD")
		if err != nil {
			t.Fatalf("NewRound(%d) error = %v", i+1, err)
		}
		res = append(res, r)
	}
	return res
}

// build is a helper for test that fails on build errors.
func build(t *testing.T, founder float64, policy Policy, rs []RoundInput) *CapTable {
	t.Helper()
	ct, err := Build(rs, S(founder), policy)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return ct
}

// near compares share counts with a tolerance, divisions are rounded to 16 digits.
func near(a, b Shares) bool {
	return a.value.Sub(b.value).Abs().LessThan(decimal.New(1, -6))
}
