package holdings

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency of 13-F filings.
const DefaultCurrency = "USD"

// Money represents a monetary value expressed in thousands of a currency
// unit, the unit used by the filings ("VALUE (x$1000)").
type Money struct {
	value decimal.Decimal // in thousands of major units
	cur   string
}

// M returns an amount of thousands of 'currency'.
func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	cur := m.cur
	if cur == "" {
		cur = DefaultCurrency
	}
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, cur).Currency()
}

// Units returns the value in major currency units (thousands multiplied out).
func (m Money) Units() decimal.Decimal { return m.value.Shift(3) }

// String returns the value in full currency units, without cents, as in
// "$1,234,000".
func (m Money) String() string {
	cur := m.currency()
	f := money.NewFormatter(0, cur.Decimal, cur.Thousand, cur.Grapheme, cur.Template)
	return f.Format(m.Units().Round(0).IntPart())
}

// Shorthand returns a compact representation for large amounts ("$1.23B",
// "-$45.60M"), and the full String otherwise.
func (m Money) Shorthand() string {
	full := m.Units()
	abs := full.Abs()
	var n string
	switch {
	case abs.GreaterThanOrEqual(decimal.New(1, 9)):
		n = abs.Shift(-9).StringFixed(2) + "B"
	case abs.GreaterThanOrEqual(decimal.New(1, 6)):
		n = abs.Shift(-6).StringFixed(2) + "M"
	default:
		return m.String()
	}
	cur := m.currency()
	s := strings.Replace(strings.Replace(cur.Template, "1", n, 1), "$", cur.Grapheme, 1)
	if full.IsNegative() {
		s = "-" + s
	}
	return s
}

// SignedString returns the string representation of the money value with a sign.
// 0 is represented as a "-"
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

// Simple wrapper around decimal.Decimal

func (m Money) Currency() string                { return m.cur }
func (m Money) Decimal() decimal.Decimal        { return m.value }
func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) Cmp(n Money) int                 { return m.value.Cmp(n.value) }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Abs() Money                      { return Money{value: m.value.Abs(), cur: m.cur} }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg(), cur: m.cur} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// Ratio returns m/total as a percentage. total must not be zero.
func (m Money) Ratio(total Money) Percent {
	return Percent(m.value.Div(total.value).Shift(2).InexactFloat64())
}

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch" + A.cur + "!=" + B.cur)
	}
	return A.cur
}

func (m Money) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("currency", m.cur)
	w.Append("amount", m.value)
	return w.MarshalJSON()
}
