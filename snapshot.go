package captable

import (
	"maps"
)

// RoundSnapshot is the state of the cap table right after one round. It is
// created once by Build and never modified.
type RoundSnapshot struct {
	Index         int
	Label         string
	PreMoney      Money
	Investment    Money
	PostMoney     Money
	PricePerShare Money  // pre-money over the shares before the round, zero when skipped
	NewShares     Shares // total shares created by the round
	Skipped       bool   // the round had no valuation or no investment

	holdings  holdings
	ownership map[StakeholderID]Percent
	topUps    map[StakeholderID]Shares
}

// newSnapshot copies h so that later rounds cannot alter the snapshot.
func newSnapshot(r RoundInput, h holdings) RoundSnapshot {
	return RoundSnapshot{
		Index:      r.Index,
		Label:      r.Label(),
		PreMoney:   r.PreMoney,
		Investment: r.Investment,
		PostMoney:  PostMoney(r.PreMoney, r.Investment),
		holdings:   h.clone(),
		ownership:  h.ownership(),
	}
}

// Shares returns the shares held by id after the round, zero for unknown stakeholders.
func (s RoundSnapshot) Shares(id StakeholderID) Shares { return s.holdings[id] }

// Ownership returns the percentage of the company held by id after the round.
func (s RoundSnapshot) Ownership(id StakeholderID) Percent { return s.ownership[id] }

// Has reports whether id is a stakeholder after the round.
func (s RoundSnapshot) Has(id StakeholderID) bool {
	_, ok := s.holdings[id]
	return ok
}

// TopUp returns the pro-rata shares credited to id in this round.
func (s RoundSnapshot) TopUp(id StakeholderID) Shares { return s.topUps[id] }

// TopUpCost returns what id pays for its pro-rata top-up at the round price.
func (s RoundSnapshot) TopUpCost(id StakeholderID) Money {
	return s.PricePerShare.Mul(s.topUps[id])
}

// TopUps returns a copy of every pro-rata top-up of the round.
func (s RoundSnapshot) TopUps() map[StakeholderID]Shares { return maps.Clone(s.topUps) }

// TotalShares returns the shares outstanding after the round.
func (s RoundSnapshot) TotalShares() Shares { return s.holdings.total() }

// Stakeholders returns the stakeholders after the round, founder first.
func (s RoundSnapshot) Stakeholders() []StakeholderID { return s.holdings.stakeholders() }

// Holdings returns a copy of the share counts per stakeholder.
func (s RoundSnapshot) Holdings() map[StakeholderID]Shares { return maps.Clone(s.holdings) }

// Ownerships returns a copy of the ownership percentages per stakeholder.
func (s RoundSnapshot) Ownerships() map[StakeholderID]Percent { return maps.Clone(s.ownership) }

// MarshalJSON writes the snapshot with a stable key order.
func (s RoundSnapshot) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("round", s.Index)
	w.Append("label", s.Label)
	w.Optional("skipped", s.Skipped)
	w.Append("preMoney", s.PreMoney)
	w.Append("investment", s.Investment)
	w.Append("postMoney", s.PostMoney)
	w.Append("pricePerShare", s.PricePerShare)
	w.Append("newShares", s.NewShares)
	w.Append("totalShares", s.TotalShares())
	w.AppendObject("shares", s.Stakeholders(), func(id StakeholderID) any { return s.holdings[id] })
	w.AppendObject("ownership", s.Stakeholders(), func(id StakeholderID) any { return s.ownership[id] })
	if len(s.topUps) > 0 {
		w.AppendObject("topUps", sortedStakeholders(s.topUps), func(id StakeholderID) any { return s.topUps[id] })
	}
	return w.MarshalJSON()
}
