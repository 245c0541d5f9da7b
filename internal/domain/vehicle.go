package domain

import "time"

// VehicleStatus is a coarse catalog flag. It is NOT the source of truth
// for time-based availability; that is always derived from reservations.
type VehicleStatus string

const (
	VehicleStatusAvailable VehicleStatus = "AVAILABLE"
	VehicleStatusReserved  VehicleStatus = "RESERVED"
	VehicleStatusActive    VehicleStatus = "ACTIVE"
	VehicleStatusRetired   VehicleStatus = "RETIRED"
)

type Vehicle struct {
	ID             int32         `json:"id"`
	Make           string        `json:"make"`
	Model          string        `json:"model"`
	PlateNumber    string        `json:"plate_number"`
	DailyRateCents int64         `json:"daily_rate_cents"`
	RateCurrency   string        `json:"rate_currency"`
	Status         VehicleStatus `json:"status"`
	CreatedOn      time.Time     `json:"created_on"`
}

// DailyRate returns the vehicle's day rate as a Money value.
func (v *Vehicle) DailyRate() (Money, error) {
	return NewMoneyFromCents(v.DailyRateCents, v.RateCurrency)
}
