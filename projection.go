package captable

import "github.com/shopspring/decimal"

// CompoundDilution returns the founder ownership after each of n rounds
// that each sell perRound percent of the company: (1-s)^k for k = 0..n.
func CompoundDilution(perRound Percent, n int) []Percent {
	if n < 0 {
		n = 0
	}
	keep := decimal.NewFromInt(1).Sub(decimal.NewFromFloat(float64(perRound)).Div(hundred))
	res := make([]Percent, 0, n+1)
	own := hundred
	for k := 0; k <= n; k++ {
		res = append(res, Percent(own.InexactFloat64()))
		own = own.Mul(keep)
	}
	return res
}

// ProRataInvestment returns the amount an investor owning ownership percent
// must put in a round of roundSize to keep its percentage.
func ProRataInvestment(ownership Percent, roundSize Money) Money {
	f := decimal.NewFromFloat(float64(ownership)).Div(hundred)
	return Money{value: roundSize.value.Mul(f), cur: roundSize.cur}
}
