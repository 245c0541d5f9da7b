package domain

import (
	"fmt"
	"math"
	"time"
)

const (
	// MinRentalMinutes is the shortest rental window accepted.
	MinRentalMinutes = 60
	// MaxRentalDays is the longest rental window accepted.
	MaxRentalDays = 90
)

// RentalPeriod is an immutable half-open interval [start, end) in UTC.
type RentalPeriod struct {
	start time.Time
	end   time.Time
}

// NewRentalPeriod validates and builds a rental period. Both instants are
// normalized to UTC. The window must be at least MinRentalMinutes long and
// at most MaxRentalDays long.
func NewRentalPeriod(start, end time.Time) (RentalPeriod, error) {
	start = start.UTC()
	end = end.UTC()
	if !end.After(start) {
		return RentalPeriod{}, fmt.Errorf("%w: end %s is not after start %s", ErrInvalidDateRange, end.Format(time.RFC3339), start.Format(time.RFC3339))
	}
	d := end.Sub(start)
	if d < MinRentalMinutes*time.Minute {
		return RentalPeriod{}, fmt.Errorf("%w: rental must be at least %d minutes", ErrInvalidDateRange, MinRentalMinutes)
	}
	if d > MaxRentalDays*24*time.Hour {
		return RentalPeriod{}, fmt.Errorf("%w: rental must be at most %d days", ErrInvalidDateRange, MaxRentalDays)
	}
	return RentalPeriod{start: start, end: end}, nil
}

func (p RentalPeriod) Start() time.Time { return p.start }
func (p RentalPeriod) End() time.Time   { return p.end }

// Minutes returns the duration of the period in whole minutes.
func (p RentalPeriod) Minutes() int64 {
	return int64(p.end.Sub(p.start) / time.Minute)
}

// Hours returns the duration of the period in fractional hours.
func (p RentalPeriod) Hours() float64 {
	return p.end.Sub(p.start).Hours()
}

// BillableDays returns the duration rounded up to whole days. A period of
// any positive length bills at least one day.
func (p RentalPeriod) BillableDays() int64 {
	return int64(math.Ceil(p.Hours() / 24.0))
}

// Overlaps reports whether two periods share any instant. Intervals are
// half-open, so a period ending exactly when another starts does not
// overlap: back-to-back bookings are legal.
func (p RentalPeriod) Overlaps(other RentalPeriod) bool {
	return p.start.Before(other.end) && other.start.Before(p.end)
}

// Contains reports whether t falls inside [start, end).
func (p RentalPeriod) Contains(t time.Time) bool {
	t = t.UTC()
	return !t.Before(p.start) && t.Before(p.end)
}

func (p RentalPeriod) String() string {
	return fmt.Sprintf("[%s, %s)", p.start.Format(time.RFC3339), p.end.Format(time.RFC3339))
}
