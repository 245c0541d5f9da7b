package utils

import (
	"fmt"

	"wheelshare-backend/internal/domain"
)

// CalculateRentalCost derives the total price of a reservation from the
// vehicle's day rate and the rental window: dailyRate × ceil(days). Pure
// function, no I/O; the currency follows the vehicle's rate.
func CalculateRentalCost(vehicle *domain.Vehicle, period domain.RentalPeriod) (domain.Money, error) {
	rate, err := vehicle.DailyRate()
	if err != nil {
		return domain.Money{}, fmt.Errorf("vehicle %d has no valid day rate: %w", vehicle.ID, err)
	}
	return rate.Times(period.BillableDays())
}
