package captable

import (
	"errors"
	"testing"
)

func TestParsePolicy(t *testing.T) {
	for _, name := range PolicyNames() {
		p, err := ParsePolicy(name)
		if err != nil {
			t.Fatalf("ParsePolicy(%q) error = %v", name, err)
		}
		if p.String() != name {
			t.Errorf("ParsePolicy(%q).String() = %q", name, p.String())
		}
	}
	if p, err := ParsePolicy(" Pro-Rata "); err != nil || p != ProRata {
		t.Errorf("ParsePolicy should be case insensitive, got %v, %v", p, err)
	}
	for _, name := range []string{"", "ratchet", "damped-pro-rata:", "damped-pro-rata:2", "damped-pro-rata:-0.1", "damped-pro-rata:NaN"} {
		if _, err := ParsePolicy(name); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("ParsePolicy(%q) error = %v, want ErrInvalidInput", name, err)
		}
	}
}

func TestPolicy_AllocateWithoutShares(t *testing.T) {
	// a build never reaches this state, the policies must still not divide by zero.
	for _, p := range []Policy{Dilution, ProRata, InvestorProRata} {
		h := holdings{Founder: S(0)}
		p.allocate(h, Investor(1), S(100))
		if !h[Investor(1)].Equal(S(100)) {
			t.Errorf("%s: investor shares = %v, want 100", p, h[Investor(1)])
		}
	}
}
