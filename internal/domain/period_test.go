package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func mustPeriod(t *testing.T, start, end time.Time) RentalPeriod {
	t.Helper()
	p, err := NewRentalPeriod(start, end)
	if err != nil {
		t.Fatalf("unexpected period error: %v", err)
	}
	return p
}

func TestNewRentalPeriod(t *testing.T) {
	base := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	t.Run("Valid", func(t *testing.T) {
		p, err := NewRentalPeriod(base, base.Add(2*time.Hour))
		assert.NoError(t, err)
		assert.Equal(t, int64(120), p.Minutes())
		assert.Equal(t, 2.0, p.Hours())
	})

	t.Run("EndEqualsStart", func(t *testing.T) {
		_, err := NewRentalPeriod(base, base)
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})

	t.Run("EndBeforeStart", func(t *testing.T) {
		_, err := NewRentalPeriod(base, base.Add(-time.Hour))
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})

	t.Run("TooShort", func(t *testing.T) {
		_, err := NewRentalPeriod(base, base.Add(59*time.Minute))
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})

	t.Run("TooLong", func(t *testing.T) {
		_, err := NewRentalPeriod(base, base.Add(91*24*time.Hour))
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})

	t.Run("NormalizesToUTC", func(t *testing.T) {
		loc := time.FixedZone("UTC+2", 2*3600)
		p, err := NewRentalPeriod(base.In(loc), base.Add(2*time.Hour).In(loc))
		assert.NoError(t, err)
		assert.Equal(t, time.UTC, p.Start().Location())
		assert.True(t, p.Start().Equal(base))
	})
}

func TestRentalPeriod_Overlaps(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	at := func(h int) time.Time { return day.Add(time.Duration(h) * time.Hour) }

	t.Run("PartialOverlap", func(t *testing.T) {
		a := mustPeriod(t, at(10), at(12))
		b := mustPeriod(t, at(11), at(13))
		assert.True(t, a.Overlaps(b))
		assert.True(t, b.Overlaps(a))
	})

	t.Run("Containment", func(t *testing.T) {
		a := mustPeriod(t, at(8), at(18))
		b := mustPeriod(t, at(10), at(12))
		assert.True(t, a.Overlaps(b))
		assert.True(t, b.Overlaps(a))
	})

	t.Run("BoundaryTouchIsNotOverlap", func(t *testing.T) {
		// [10:00,12:00) then [12:00,14:00): back-to-back bookings are legal.
		a := mustPeriod(t, at(10), at(12))
		b := mustPeriod(t, at(12), at(14))
		assert.False(t, a.Overlaps(b))
		assert.False(t, b.Overlaps(a))
	})

	t.Run("Disjoint", func(t *testing.T) {
		a := mustPeriod(t, at(8), at(9))
		b := mustPeriod(t, at(14), at(15))
		assert.False(t, a.Overlaps(b))
	})
}

func TestRentalPeriod_Contains(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	p := mustPeriod(t, day.Add(10*time.Hour), day.Add(12*time.Hour))

	assert.True(t, p.Contains(day.Add(10*time.Hour)), "start is inside the half-open interval")
	assert.True(t, p.Contains(day.Add(11*time.Hour)))
	assert.False(t, p.Contains(day.Add(12*time.Hour)), "end is outside the half-open interval")
	assert.False(t, p.Contains(day.Add(9*time.Hour)))
}

func TestRentalPeriod_BillableDays(t *testing.T) {
	base := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		dur  time.Duration
		want int64
	}{
		{"OneHour", time.Hour, 1},
		{"ExactDay", 24 * time.Hour, 1},
		{"DayAndOneMinute", 24*time.Hour + time.Minute, 2},
		{"ThreeDays", 72 * time.Hour, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustPeriod(t, base, base.Add(tt.dur))
			assert.Equal(t, tt.want, p.BillableDays())
		})
	}
}
