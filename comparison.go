package captable

import (
	"encoding/json"
	"errors"
	"sync"
)

// Comparison holds two cap tables built from the same rounds under two
// different policies.
type Comparison struct {
	A, B *CapTable
}

// Compare builds the cap table under policies a and b. The builds
// share no state and run concurrently.
func Compare(rounds []RoundInput, founderShares Shares, a, b Policy) (*Comparison, error) {
	var (
		wg   sync.WaitGroup
		c    Comparison
		errA error
		errB error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		c.A, errA = Build(rounds, founderShares, a)
	}()
	go func() {
		defer wg.Done()
		c.B, errB = Build(rounds, founderShares, b)
	}()
	wg.Wait()
	if err := errors.Join(errA, errB); err != nil {
		return nil, err
	}
	return &c, nil
}

// StakeholderComparison is the final ownership of one stakeholder under both policies.
type StakeholderComparison struct {
	ID   StakeholderID
	A, B Percent
}

// Delta returns B minus A, positive when policy B is more favorable to the stakeholder.
func (s StakeholderComparison) Delta() Percent { return s.B - s.A }

// Stakeholders compares the final ownership of every stakeholder, founder first.
func (c *Comparison) Stakeholders() []StakeholderComparison {
	fa, fb := c.A.Final(), c.B.Final()
	ids := make(map[StakeholderID]struct{})
	for _, id := range fa.Stakeholders() {
		ids[id] = struct{}{}
	}
	for _, id := range fb.Stakeholders() {
		ids[id] = struct{}{}
	}
	var res []StakeholderComparison
	for _, id := range sortedStakeholders(ids) {
		res = append(res, StakeholderComparison{ID: id, A: fa.Ownership(id), B: fb.Ownership(id)})
	}
	return res
}

func (c *Comparison) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("a", c.A)
	w.Append("b", c.B)
	var rows []any
	for _, s := range c.Stakeholders() {
		var r jsonObjectWriter
		r.Append("stakeholder", s.ID)
		r.Append("a", s.A)
		r.Append("b", s.B)
		r.Append("delta", s.Delta())
		raw, err := r.MarshalJSON()
		if err != nil {
			return nil, err
		}
		rows = append(rows, json.RawMessage(raw))
	}
	w.Append("stakeholders", rows)
	return w.MarshalJSON()
}
