package captable

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}

}

// finite reports an error for NaN and infinite values, which decimal cannot represent.
func finite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s must be a finite number, got %v: %w", name, v, ErrInvalidInput)
	}
	return nil
}

// Shares is a share count. Fractional shares are kept as is, only
// renderers round them.
type Shares struct {
	value decimal.Decimal
}

func S[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Shares {
	return Shares{value: newDecimal(value)}
}

// NewShares converts a float share count, rejecting non finite values.
func NewShares(v float64) (Shares, error) {
	if err := finite("share count", v); err != nil {
		return Shares{}, err
	}
	return S(v), nil
}

func (t Shares) Equal(p Shares) bool       { return t.value.Equal(p.value) }
func (t Shares) LessThan(p Shares) bool    { return t.value.LessThan(p.value) }
func (t Shares) GreaterThan(p Shares) bool { return t.value.GreaterThan(p.value) }
func (t Shares) Div(p Shares) Shares       { return Shares{value: divSignificant(t.value, p.value)} }
func (t Shares) Mul(p Shares) Shares       { return Shares{value: t.value.Mul(p.value)} }
func (t Shares) Add(p Shares) Shares       { return Shares{value: t.value.Add(p.value)} }
func (t Shares) Sub(p Shares) Shares       { return Shares{value: t.value.Sub(p.value)} }
func (t Shares) IsNegative() bool          { return t.value.IsNegative() }
func (t Shares) IsPositive() bool          { return t.value.IsPositive() }
func (t Shares) IsZero() bool              { return t.value.IsZero() }
func (t Shares) String() string            { return t.value.String() }

// Round returns the share count rounded to whole shares, for display.
func (t Shares) Round() int64 { return t.value.Round(0).IntPart() }

// scale multiplies the share count by a plain factor.
func (t Shares) scale(f decimal.Decimal) Shares { return Shares{value: t.value.Mul(f)} }

// ratio returns t/p as a Percent, 0 when p is zero.
func (t Shares) ratio(p Shares) Percent {
	if !p.IsPositive() {
		return 0
	}
	return Percent(t.value.Mul(hundred).Div(p.value).InexactFloat64())
}

var hundred = decimal.NewFromInt(100)

// magnitude returns the position of the leading digit of d: 1 for 5, 0 for
// 0.5, -6 for 0.0000005.
func magnitude(d decimal.Decimal) int32 {
	if d.IsZero() {
		return 0
	}
	return int32(d.NumDigits()) + d.Exponent()
}

// divSignificant returns a/b with at least decimal.DivisionPrecision
// significant digits. decimal.Div keeps that many digits after the point,
// which leaves almost nothing of a price like 1e-12.
func divSignificant(a, b decimal.Decimal) decimal.Decimal {
	prec := int32(decimal.DivisionPrecision)
	if extra := magnitude(b) - magnitude(a); extra > 0 {
		prec += extra
	}
	return a.DivRound(b, prec)
}

func (t Shares) MarshalJSON() ([]byte, error) {
	return t.value.MarshalJSON()
}
func (t *Shares) UnmarshalJSON(decimalBytes []byte) error {
	return t.value.UnmarshalJSON(decimalBytes)
}
