package captable

import (
	"fmt"
)

// CapTable is the ordered sequence of round snapshots produced by one build.
type CapTable struct {
	Policy        Policy
	FounderShares Shares
	Currency      string
	Snapshots     []RoundSnapshot // Snapshots[0] is the formation
}

// Build computes the cap table for rounds under policy.
//
// All inputs are validated first: on error no snapshot is produced. The
// formation snapshot is always emitted, rounds[0] may be that formation row
// (index 0) or the first investment round (index 1). A round with no
// valuation or no investment is skipped and repeats the previous state.
func Build(rounds []RoundInput, founderShares Shares, policy Policy) (*CapTable, error) {
	currency, err := validateRounds(rounds, founderShares, policy)
	if err != nil {
		return nil, fmt.Errorf("cannot build cap table: %w", err)
	}
	if currency == "" {
		currency = DefaultCurrency
	}

	h := newHoldings(founderShares)
	formation := RoundInput{Index: 0, PreMoney: M(0, currency), Investment: M(0, currency)}
	snapshots := make([]RoundSnapshot, 0, len(rounds)+1)
	snapshots = append(snapshots, newSnapshot(formation, h))
	snapshots[0].PricePerShare = M(0, currency)

	for _, r := range rounds {
		if r.isFormation() {
			continue
		}
		r = withCurrency(r, currency)
		snapshots = append(snapshots, step(h, r, policy))
	}

	return &CapTable{
		Policy:        policy,
		FounderShares: founderShares,
		Currency:      currency,
		Snapshots:     snapshots,
	}, nil
}

// step applies a single round to h and returns its snapshot.
func step(h holdings, r RoundInput, policy Policy) RoundSnapshot {
	before := h.total()
	price := PricePerShare(r.PreMoney, before)
	issued := sharesFor(r.Investment, r.PreMoney, before)
	if r.degenerate() || !issued.IsPositive() {
		s := newSnapshot(r, h)
		s.PricePerShare = M(0, r.PreMoney.Currency())
		s.Skipped = true
		return s
	}

	topUps := policy.allocate(h, Investor(r.Index), issued)

	s := newSnapshot(r, h)
	s.PricePerShare = price
	s.NewShares = issued
	s.topUps = topUps
	return s
}

// withCurrency sets the build currency on amounts that have none.
func withCurrency(r RoundInput, currency string) RoundInput {
	if r.PreMoney.Currency() == "" {
		r.PreMoney = M(r.PreMoney.value, currency)
	}
	if r.Investment.Currency() == "" {
		r.Investment = M(r.Investment.value, currency)
	}
	return r
}

// Final returns the snapshot of the last round.
func (t *CapTable) Final() RoundSnapshot { return t.Snapshots[len(t.Snapshots)-1] }

// Round returns the snapshot of round index.
func (t *CapTable) Round(index int) (RoundSnapshot, bool) {
	if index < 0 || index >= len(t.Snapshots) {
		return RoundSnapshot{}, false
	}
	return t.Snapshots[index], true
}

// Stakeholders returns every stakeholder that appears in the cap table.
func (t *CapTable) Stakeholders() []StakeholderID { return t.Final().Stakeholders() }
