package captable

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Policy decides how the shares issued by a round are distributed between
// existing holders and the round's new investor. A policy is selected once
// per build.
type Policy interface {
	// String returns the policy name as accepted by ParsePolicy.
	String() string
	// allocate credits issued shares to h. It returns the top-up credited
	// to each pre-existing holder, if any.
	allocate(h holdings, investor StakeholderID, issued Shares) map[StakeholderID]Shares
}

var (
	// Dilution credits the whole issuance to the new investor. Existing
	// holders keep their share count and their percentage drops.
	Dilution Policy = dilution{}

	// ProRata lets every holder present before the round, the founder
	// included, top up in proportion to its pre-round ownership. Since all
	// of them take part, every pre-existing percentage is preserved exactly
	// and the remainder left to the new investor is zero.
	ProRata Policy = proRata{factor: decimal.NewFromInt(1)}

	// InvestorProRata lets only prior investors exercise pro-rata rights.
	// They keep their percentage, the founder is diluted as under Dilution
	// and the new investor receives the founder's part of the round.
	InvestorProRata Policy = proRata{factor: decimal.NewFromInt(1), investorsOnly: true}
)

// DampedProRata returns a pro-rata policy where every top-up is scaled by
// factor, in [0, 1]. DampedProRata(0) behaves like Dilution and
// DampedProRata(1) like ProRata.
func DampedProRata(factor float64) (Policy, error) {
	if err := finite("pro-rata factor", factor); err != nil {
		return nil, err
	}
	if factor < 0 || factor > 1 {
		return nil, fmt.Errorf("pro-rata factor must be between 0 and 1, got %v: %w", factor, ErrInvalidInput)
	}
	return proRata{factor: decimal.NewFromFloat(factor), damped: true}, nil
}

const dampedPrefix = "damped-pro-rata:"

// ParsePolicy returns the policy named s: "dilution", "pro-rata",
// "investor-pro-rata" or "damped-pro-rata:<factor>".
func ParsePolicy(s string) (Policy, error) {
	switch s = strings.ToLower(strings.TrimSpace(s)); s {
	case "dilution":
		return Dilution, nil
	case "pro-rata", "prorata":
		return ProRata, nil
	case "investor-pro-rata":
		return InvestorProRata, nil
	}
	if f, ok := strings.CutPrefix(s, dampedPrefix); ok {
		factor, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid pro-rata factor %q: %w", f, ErrInvalidInput)
		}
		return DampedProRata(factor)
	}
	return nil, fmt.Errorf("unknown allocation policy %q: %w", s, ErrInvalidInput)
}

// PolicyNames lists the names accepted by ParsePolicy, for help and completion.
func PolicyNames() []string {
	return []string{"dilution", "pro-rata", "investor-pro-rata", dampedPrefix + "0.5"}
}

type dilution struct{}

func (dilution) String() string { return "dilution" }

func (dilution) allocate(h holdings, investor StakeholderID, issued Shares) map[StakeholderID]Shares {
	h.credit(investor, issued)
	return nil
}

type proRata struct {
	factor        decimal.Decimal
	investorsOnly bool
	damped        bool
}

func (p proRata) String() string {
	switch {
	case p.damped:
		return dampedPrefix + p.factor.String()
	case p.investorsOnly:
		return "investor-pro-rata"
	}
	return "pro-rata"
}

func (p proRata) allocate(h holdings, investor StakeholderID, issued Shares) map[StakeholderID]Shares {
	total := h.total()
	if !total.IsPositive() {
		h.credit(investor, issued)
		return nil
	}

	// the pool is computed from the participating shares so that the
	// remainder is exact: zero when every holder takes part at full factor.
	var participating Shares
	ids := h.stakeholders()
	for _, id := range ids {
		if p.investorsOnly && id.IsFounder() {
			continue
		}
		participating = participating.Add(h[id])
	}
	pool := issued
	if !participating.Equal(total) {
		pool = issued.Mul(participating).Div(total)
	}
	pool = pool.scale(p.factor)

	topUps := make(map[StakeholderID]Shares)
	for _, id := range ids {
		if p.investorsOnly && id.IsFounder() {
			continue
		}
		bonus := issued.Mul(h[id]).Div(total).scale(p.factor)
		if bonus.IsZero() {
			continue
		}
		topUps[id] = bonus
	}
	for id, bonus := range topUps {
		h.credit(id, bonus)
	}
	h.credit(investor, issued.Sub(pool))
	return topUps
}
