package captable

// This file holds the valuation and share pricing formulas. They are pure
// functions over a single round.
//
// The price is computed from the pre-money valuation and the shares
// outstanding before the round. That way existing holders keep their value,
// and a new investor credited with the whole issuance owns exactly
// investment/post-money of the company.

// PostMoney returns the company valuation after the investment.
func PostMoney(preMoney, investment Money) Money {
	return preMoney.Add(investment)
}

// PricePerShare returns preMoney divided by the shares outstanding before
// the round. It returns a zero price when no share exists: the round cannot
// be priced.
func PricePerShare(preMoney Money, before Shares) Money {
	if !before.IsPositive() {
		return M(0, preMoney.Currency())
	}
	return preMoney.Div(before).exact()
}

// NewSharesIssued returns the number of shares the investment buys at price.
// It returns zero when the price is not positive.
func NewSharesIssued(investment, price Money) Shares {
	if !price.IsPositive() {
		return Shares{}
	}
	return investment.DivPrice(price)
}

// sharesFor sizes the issuance as investment * before / preMoney. It is
// NewSharesIssued(investment, PricePerShare(preMoney, before)) with a
// single division, so the rounding of the price does not reach the share
// count.
func sharesFor(investment, preMoney Money, before Shares) Shares {
	if !preMoney.IsPositive() || !before.IsPositive() {
		return Shares{}
	}
	return Shares{value: divSignificant(investment.value.Mul(before.value), preMoney.value)}
}
