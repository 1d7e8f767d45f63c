package captable

import (
	"math"
	"testing"
)

func TestPostMoney(t *testing.T) {
	if got, want := PostMoney(USD(5e6), USD(2e6)), USD(7e6); !got.Equal(want) {
		t.Errorf("PostMoney() = %v, want %v", got, want)
	}
}

func TestPricePerShare(t *testing.T) {
	tests := []struct {
		name   string
		pre    Money
		before Shares
		want   Money
	}{
		{"regular", USD(5e6), S(10_000_000), USD(0.5)},
		{"no share yet", USD(5e6), S(0), USD(0)},
		{"negative base", USD(5e6), S(-1), USD(0)},
		{"zero valuation", USD(0), S(10), USD(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PricePerShare(tt.pre, tt.before); !got.Equal(tt.want) {
				t.Errorf("PricePerShare(%v, %v) = %v, want %v", tt.pre, tt.before, got, tt.want)
			}
		})
	}
}

func TestNewSharesIssued(t *testing.T) {
	tests := []struct {
		name       string
		investment Money
		price      Money
		want       Shares
	}{
		{"regular", USD(2e6), USD(0.5), S(4_000_000)},
		{"undefined price", USD(2e6), USD(0), S(0)},
		{"no investment", USD(0), USD(0.5), S(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewSharesIssued(tt.investment, tt.price); !got.Equal(tt.want) {
				t.Errorf("NewSharesIssued(%v, %v) = %v, want %v", tt.investment, tt.price, got, tt.want)
			}
		})
	}
}

func TestNewInvestorOwnsInvestmentOverPostMoney(t *testing.T) {
	// pricing on the pre-money makes the new investor own investment/post-money.
	pre, inv, before := USD(7e6), USD(3e6), S(12_345_678)
	issued := NewSharesIssued(inv, PricePerShare(pre, before))
	got := issued.ratio(before.Add(issued))
	want := Percent(100 * inv.AsFloat() / PostMoney(pre, inv).AsFloat())
	if !got.Equal(want) {
		t.Errorf("investor ownership = %v, want %v", got, want)
	}
}

func TestPricePerShare_SignificantDigits(t *testing.T) {
	// 16 digits after the point would leave 4 significant digits here.
	before := S(3e11)
	price := PricePerShare(USD(1), before)
	if got := price.Mul(before).AsFloat(); math.Abs(got-1) > 1e-12 {
		t.Errorf("price %v times %v = %v, want 1", price, before, got)
	}
	if got := NewSharesIssued(USD(1), price).ratio(before); !got.Equal(100) {
		t.Errorf("NewSharesIssued() = %v of the founder shares, want 100%%", got)
	}
}
