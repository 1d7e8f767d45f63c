package captable

import "testing"

func TestCapTable_Summary(t *testing.T) {
	rs := rounds(t, [2]float64{5e6, 2e6}, [2]float64{10e6, 5e6}, [2]float64{30e6, 0})

	t.Run("investor pro-rata", func(t *testing.T) {
		s := build(t, 10_000_000, InvestorProRata, rs).Summary()
		if want := USD(15e6); !s.FinalValuation.Equal(want) {
			t.Errorf("FinalValuation = %v, want %v (skipped rounds do not count)", s.FinalValuation, want)
		}
		if want := Percent(100.0 * 10 / 21); !s.Founder.Equal(want) {
			t.Errorf("Founder = %v, want %v", s.Founder, want)
		}
		if want := Percent(100 - 100.0*10/21); !s.FounderDilution.Equal(want) {
			t.Errorf("FounderDilution = %v, want %v", s.FounderDilution, want)
		}
		if !s.HasProtectedInvestor || s.ProtectedInvestor != Investor(1) {
			t.Fatalf("ProtectedInvestor = %v (%v), want Seed", s.ProtectedInvestor, s.HasProtectedInvestor)
		}
		if want := Percent(100.0 * 2 / 7); !s.ProtectedOwnership.Equal(want) {
			t.Errorf("ProtectedOwnership = %v, want %v", s.ProtectedOwnership, want)
		}
	})

	t.Run("dilution", func(t *testing.T) {
		s := build(t, 10_000_000, Dilution, rs).Summary()
		if s.HasProtectedInvestor {
			t.Errorf("no investor is protected under dilution, got %v", s.ProtectedInvestor)
		}
		if want := S(21_000_000); !near(s.TotalShares, want) {
			t.Errorf("TotalShares = %v, want %v", s.TotalShares, want)
		}
	})

	t.Run("formation only", func(t *testing.T) {
		s := build(t, 10_000_000, Dilution, nil).Summary()
		if !s.FinalValuation.IsZero() || !s.Founder.Equal(100) || !s.FounderDilution.Equal(0) {
			t.Errorf("unexpected summary %+v", s)
		}
	})
}
