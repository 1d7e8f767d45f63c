package captable

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCompare(t *testing.T) {
	rs := rounds(t, [2]float64{5e6, 2e6}, [2]float64{10e6, 5e6})
	c, err := Compare(rs, S(10_000_000), Dilution, InvestorProRata)
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}

	for _, tc := range []struct {
		got    *CapTable
		policy Policy
	}{{c.A, Dilution}, {c.B, InvestorProRata}} {
		var got, want bytes.Buffer
		if err := EncodeCapTable(&got, tc.got); err != nil {
			t.Fatal(err)
		}
		if err := EncodeCapTable(&want, build(t, 10_000_000, tc.policy, rs)); err != nil {
			t.Fatal(err)
		}
		if got.String() != want.String() {
			t.Errorf("%s: comparison differs from an independent build", tc.policy)
		}
	}

	rows := c.Stakeholders()
	if len(rows) != 3 {
		t.Fatalf("len(Stakeholders()) = %d, want 3", len(rows))
	}
	wants := []struct {
		id    StakeholderID
		delta Percent
	}{
		{Founder, 0},
		{Investor(1), Percent(100.0*6/21 - 100.0*4/21)},
		{Investor(2), Percent(100.0*5/21 - 100.0*7/21)},
	}
	for i, w := range wants {
		if rows[i].ID != w.id {
			t.Errorf("row %d is %v, want %v", i, rows[i].ID, w.id)
		}
		if !rows[i].Delta().Equal(w.delta) {
			t.Errorf("%s delta = %v, want %v", w.id.Label(), rows[i].Delta(), w.delta)
		}
	}
}

func TestCompare_FounderOwnership(t *testing.T) {
	rs := rounds(t, [2]float64{5e6, 2e6}, [2]float64{10e6, 5e6}, [2]float64{40e6, 10e6})
	c, err := Compare(rs, S(10_000_000), Dilution, InvestorProRata)
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	founder := func(ct *CapTable) []Percent {
		var res []Percent
		for _, s := range ct.Snapshots {
			res = append(res, s.Ownership(Founder))
		}
		return res
	}
	if diff := cmp.Diff(founder(c.A), founder(c.B), cmp.Comparer(Percent.Equal)); diff != "" {
		t.Errorf("founder ownership differs between policies (-dilution +investor-pro-rata):\n%s", diff)
	}
}

func TestCompare_InvalidInput(t *testing.T) {
	if _, err := Compare(nil, S(0), Dilution, ProRata); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Compare() error = %v, want ErrInvalidInput", err)
	}
}

func TestBuild_Concurrent(t *testing.T) {
	rs := rounds(t, propertyScenarios[4]...)
	var want bytes.Buffer
	if err := EncodeCapTable(&want, build(t, 10_000_000, InvestorProRata, rs)); err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	results := make([]string, 8)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ct, err := Build(rs, S(10_000_000), InvestorProRata)
			if err != nil {
				return
			}
			var b bytes.Buffer
			if err := EncodeCapTable(&b, ct); err == nil {
				results[i] = b.String()
			}
		}()
	}
	wg.Wait()
	for i, got := range results {
		if got != want.String() {
			t.Errorf("concurrent build %d differs", i)
		}
	}
}
