package captable

import "maps"

// holdings is the running share count per stakeholder. It is owned by a
// single build and never shared.
type holdings map[StakeholderID]Shares

func newHoldings(founderShares Shares) holdings {
	return holdings{Founder: founderShares}
}

// credit adds shares to id, creating the stakeholder if needed.
func (h holdings) credit(id StakeholderID, shares Shares) {
	h[id] = h[id].Add(shares)
}

// total sums all share counts.
func (h holdings) total() Shares {
	var t Shares
	for _, s := range h {
		t = t.Add(s)
	}
	return t
}

func (h holdings) stakeholders() []StakeholderID { return sortedStakeholders(h) }

// ownership derives every stakeholder's percentage.
func (h holdings) ownership() map[StakeholderID]Percent {
	total := h.total()
	pct := make(map[StakeholderID]Percent, len(h))
	for id, s := range h {
		pct[id] = s.ratio(total)
	}
	return pct
}

func (h holdings) clone() holdings { return maps.Clone(h) }
