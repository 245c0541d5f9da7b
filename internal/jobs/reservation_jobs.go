package jobs

import (
	"context"

	"wheelshare-backend/internal/logger"
)

// ActivateDueReservations advances CONFIRMED reservations whose start has
// been crossed to ACTIVE. The selection predicate excludes already-advanced
// rows, so re-running the sweep is a no-op. One batch, one transaction.
func (jr *JobRunner) ActivateDueReservations() {
	jr.runWithRecovery("ActivateDueReservations", func() {
		ctx := context.Background()
		now := jr.clock.Now()

		query := `
			UPDATE reservations
			SET state = 'ACTIVE',
			    updated_on = $1
			WHERE state = 'CONFIRMED'
			  AND start_at <= $1
			RETURNING id, vehicle_id
		`

		rows, err := jr.db.QueryContext(ctx, query, now)
		if err != nil {
			logger.Error("Failed to activate due reservations", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var id, vehicleID int32
			if err := rows.Scan(&id, &vehicleID); err != nil {
				logger.Error("Failed to scan activated reservation", "error", err)
				continue
			}
			logger.Debug("Reservation activated", "reservation_id", id, "vehicle_id", vehicleID)
			count++
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating activated reservations", "error", err)
			return
		}

		logger.Info("Activated due reservations", "count", count)
	})
}

// CompleteEndedReservations advances ACTIVE reservations whose end has
// been crossed to COMPLETED. Independent of the activation sweep; a
// failure of one must not block the other.
func (jr *JobRunner) CompleteEndedReservations() {
	jr.runWithRecovery("CompleteEndedReservations", func() {
		ctx := context.Background()
		now := jr.clock.Now()

		query := `
			UPDATE reservations
			SET state = 'COMPLETED',
			    updated_on = $1
			WHERE state = 'ACTIVE'
			  AND end_at <= $1
			RETURNING id, vehicle_id
		`

		rows, err := jr.db.QueryContext(ctx, query, now)
		if err != nil {
			logger.Error("Failed to complete ended reservations", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		var freedVehicles []int32
		for rows.Next() {
			var id, vehicleID int32
			if err := rows.Scan(&id, &vehicleID); err != nil {
				logger.Error("Failed to scan completed reservation", "error", err)
				continue
			}
			logger.Debug("Reservation completed", "reservation_id", id, "vehicle_id", vehicleID)
			freedVehicles = append(freedVehicles, vehicleID)
			count++
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating completed reservations", "error", err)
			return
		}

		// Catalog flag only; availability truth stays in reservations.
		for _, vehicleID := range freedVehicles {
			if err := jr.store.VehicleRepository.UpdateStatus(ctx, vehicleID, "AVAILABLE"); err != nil {
				logger.Warn("Failed to reset vehicle status", "vehicle_id", vehicleID, "error", err)
			}
		}

		logger.Info("Completed ended reservations", "count", count)
	})
}
