package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fractional digits kept for every monetary amount.
const MoneyScale = 2

// Money is an exact decimal amount held at two fractional digits. Inputs with more digits are
// rounded half away from zero on the way in, matching NUMERIC(14,2), so every sum and
// difference is taken over the values that are shown. It serializes as a JSON string,
// so "18000.00" - "17450.00" comes back as "550.00".
type Money struct {
	amount decimal.Decimal
}

// NewMoney wraps a decimal value.
func NewMoney(d decimal.Decimal) Money {
	return Money{amount: d.Round(MoneyScale)}
}

// ZeroMoney returns 0.00.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// ParseMoney parses a decimal string such as "25000.00".
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid monetary amount %q: %w", s, err)
	}
	return NewMoney(d), nil
}

// MustParseMoney is ParseMoney for literals known to be valid.
func MustParseMoney(s string) Money {
	m, err := ParseMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Decimal returns the underlying decimal value.
func (m Money) Decimal() decimal.Decimal { return m.amount }

func (m Money) Add(o Money) Money { return Money{amount: m.amount.Add(o.amount)} }

func (m Money) Sub(o Money) Money { return Money{amount: m.amount.Sub(o.amount)} }

// Neg returns -m.
func (m Money) Neg() Money { return Money{amount: m.amount.Neg()} }

func (m Money) GreaterThan(o Money) bool { return m.amount.GreaterThan(o.amount) }

func (m Money) Equal(o Money) bool { return m.amount.Equal(o.amount) }

func (m Money) IsNegative() bool { return m.amount.IsNegative() }

// String renders the amount with exactly two fractional digits.
func (m Money) String() string {
	return m.amount.StringFixed(MoneyScale)
}

// MarshalJSON encodes the amount as a quoted fixed-point string.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON accepts both "123.45" and 123.45.
func (m *Money) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("invalid monetary amount: %w", err)
	}
	*m = NewMoney(d)
	return nil
}

// MoneyPtr is a convenience for optional amounts.
func MoneyPtr(m Money) *Money { return &m }
