package jobs

import (
	"context"
	"time"

	"wheelshare-backend/internal/logger"
)

// SendPickupReminders emails clients whose confirmed reservation starts
// within the next 24 hours. Send failures are logged and retried on the
// next tick by virtue of reminded_on staying NULL.
func (jr *JobRunner) SendPickupReminders() {
	jr.runWithRecovery("SendPickupReminders", func() {
		ctx := context.Background()
		now := jr.clock.Now()

		query := `
			SELECT r.id, r.start_at, c.email, c.name, v.make, v.model, v.plate_number
			FROM reservations r
			JOIN clients c ON c.id = r.client_id
			JOIN vehicles v ON v.id = r.vehicle_id
			WHERE r.state = 'CONFIRMED'
			  AND r.start_at > $1
			  AND r.start_at <= $2
			  AND r.reminded_on IS NULL
		`

		rows, err := jr.db.QueryContext(ctx, query, now, now.Add(24*time.Hour))
		if err != nil {
			logger.Error("Failed to select reservations for reminders", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var id int32
			var startAt time.Time
			var email, name, vehicleMake, model, plate string
			if err := rows.Scan(&id, &startAt, &email, &name, &vehicleMake, &model, &plate); err != nil {
				logger.Error("Failed to scan reminder row", "error", err)
				continue
			}

			vehicle := vehicleMake + " " + model + " (" + plate + ")"
			if err := jr.services.Email.SendPickupReminder(ctx, email, name, vehicle, startAt); err != nil {
				logger.Warn("Failed to send pickup reminder", "reservation_id", id, "error", err)
				continue
			}
			if _, err := jr.db.ExecContext(ctx, `UPDATE reservations SET reminded_on = $1 WHERE id = $2`, now, id); err != nil {
				logger.Warn("Failed to mark reminder sent", "reservation_id", id, "error", err)
			}
			count++
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating reminder rows", "error", err)
			return
		}

		logger.Info("Sent pickup reminders", "count", count)
	})
}
