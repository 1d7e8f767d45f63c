package captable

// Summary holds the headline figures of a cap table.
type Summary struct {
	FinalValuation  Money   // post-money of the last priced round
	TotalShares     Shares  // shares outstanding after the last round
	Founder         Percent // founder ownership after the last round
	FounderDilution Percent // 100 minus the founder ownership

	// ProtectedInvestor is the investor that kept the largest percentage
	// through at least one later priced round, if any.
	ProtectedInvestor    StakeholderID
	ProtectedOwnership   Percent
	HasProtectedInvestor bool
}

// Summary computes the headline figures of the cap table.
func (t *CapTable) Summary() Summary {
	final := t.Final()
	s := Summary{
		FinalValuation:  M(0, t.Currency),
		TotalShares:     final.TotalShares(),
		Founder:         final.Ownership(Founder),
		FounderDilution: 100 - final.Ownership(Founder),
	}
	for _, snap := range t.Snapshots {
		if !snap.Skipped && snap.Index > 0 {
			s.FinalValuation = snap.PostMoney
		}
	}

	// an investor is protected when its percentage after the last round is
	// the one it had when it joined, while later rounds issued shares.
	for _, id := range final.Stakeholders() {
		if id.IsFounder() {
			continue
		}
		joined, ok := t.Round(id.Round())
		if !ok || joined.Ownership(id) == 0 || !t.issuedAfter(id.Round()) {
			continue
		}
		if !final.Ownership(id).Equal(joined.Ownership(id)) {
			continue
		}
		if !s.HasProtectedInvestor || final.Ownership(id) > s.ProtectedOwnership {
			s.ProtectedInvestor, s.ProtectedOwnership, s.HasProtectedInvestor = id, final.Ownership(id), true
		}
	}
	return s
}

// issuedAfter reports whether any round after index issued shares.
func (t *CapTable) issuedAfter(index int) bool {
	for _, snap := range t.Snapshots[index+1:] {
		if snap.NewShares.IsPositive() {
			return true
		}
	}
	return false
}

func (s Summary) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("finalValuation", s.FinalValuation)
	w.Append("totalShares", s.TotalShares)
	w.Append("founder", s.Founder)
	w.Append("founderDilution", s.FounderDilution)
	if s.HasProtectedInvestor {
		w.Append("protectedInvestor", s.ProtectedInvestor)
		w.Append("protectedOwnership", s.ProtectedOwnership)
	}
	return w.MarshalJSON()
}

// MarshalJSON writes the whole cap table: build parameters, summary and
// all the snapshots.
func (t *CapTable) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("policy", t.Policy.String())
	w.Append("currency", t.Currency)
	w.Append("founderShares", t.FounderShares)
	w.EmbedFrom(struct {
		Summary Summary `json:"summary"`
	}{t.Summary()})
	w.Append("rounds", t.Snapshots)
	return w.MarshalJSON()
}
