package domain

import (
	"fmt"
	"math"
)

// Money is a fixed-point amount tagged with an ISO 4217 currency code.
// Amounts are stored in cents and rounded to two decimal places on
// construction. Arithmetic is only defined between equal currencies.
type Money struct {
	Cents    int64  `json:"cents"`
	Currency string `json:"currency"`
}

// NewMoney builds a Money from a decimal amount, rounding half away from
// zero to cents. Negative amounts are rejected.
func NewMoney(amount float64, currency string) (Money, error) {
	if amount < 0 {
		return Money{}, fmt.Errorf("money amount must not be negative: %f", amount)
	}
	if currency == "" {
		return Money{}, fmt.Errorf("money currency is required")
	}
	return Money{Cents: int64(math.Round(amount * 100)), Currency: currency}, nil
}

// NewMoneyFromCents builds a Money from an integral cents amount.
func NewMoneyFromCents(cents int64, currency string) (Money, error) {
	if cents < 0 {
		return Money{}, fmt.Errorf("money amount must not be negative: %d cents", cents)
	}
	if currency == "" {
		return Money{}, fmt.Errorf("money currency is required")
	}
	return Money{Cents: cents, Currency: currency}, nil
}

// Amount returns the decimal value of the amount.
func (m Money) Amount() float64 {
	return float64(m.Cents) / 100.0
}

// Add returns the sum of two amounts of the same currency.
func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("currency mismatch: %s vs %s", m.Currency, other.Currency)
	}
	return Money{Cents: m.Cents + other.Cents, Currency: m.Currency}, nil
}

// Times returns the amount multiplied by a non-negative integer factor.
func (m Money) Times(n int64) (Money, error) {
	if n < 0 {
		return Money{}, fmt.Errorf("money factor must not be negative: %d", n)
	}
	return Money{Cents: m.Cents * n, Currency: m.Currency}, nil
}

// LessThan reports whether m is strictly smaller than other.
func (m Money) LessThan(other Money) (bool, error) {
	if m.Currency != other.Currency {
		return false, fmt.Errorf("currency mismatch: %s vs %s", m.Currency, other.Currency)
	}
	return m.Cents < other.Cents, nil
}

// Equals reports whether two amounts have the same currency and value.
func (m Money) Equals(other Money) bool {
	return m.Currency == other.Currency && m.Cents == other.Cents
}

func (m Money) String() string {
	return fmt.Sprintf("%.2f %s", m.Amount(), m.Currency)
}
