package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMoney(t *testing.T) {
	t.Run("RoundsToCents", func(t *testing.T) {
		m, err := NewMoney(19.999, "EUR")
		assert.NoError(t, err)
		assert.Equal(t, int64(2000), m.Cents)
	})

	t.Run("RejectsNegative", func(t *testing.T) {
		_, err := NewMoney(-1, "EUR")
		assert.Error(t, err)
	})

	t.Run("RequiresCurrency", func(t *testing.T) {
		_, err := NewMoney(10, "")
		assert.Error(t, err)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	a, _ := NewMoneyFromCents(1500, "EUR")
	b, _ := NewMoneyFromCents(500, "EUR")
	c, _ := NewMoneyFromCents(500, "USD")

	t.Run("Add", func(t *testing.T) {
		sum, err := a.Add(b)
		assert.NoError(t, err)
		assert.Equal(t, int64(2000), sum.Cents)
	})

	t.Run("AddCurrencyMismatch", func(t *testing.T) {
		_, err := a.Add(c)
		assert.Error(t, err)
	})

	t.Run("Times", func(t *testing.T) {
		total, err := b.Times(3)
		assert.NoError(t, err)
		assert.Equal(t, int64(1500), total.Cents)
	})

	t.Run("LessThan", func(t *testing.T) {
		less, err := b.LessThan(a)
		assert.NoError(t, err)
		assert.True(t, less)

		_, err = b.LessThan(c)
		assert.Error(t, err)
	})

	t.Run("Equals", func(t *testing.T) {
		assert.True(t, b.Equals(Money{Cents: 500, Currency: "EUR"}))
		assert.False(t, b.Equals(c))
	})

	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "15.00 EUR", a.String())
	})
}
