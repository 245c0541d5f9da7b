package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"wheelshare-backend/internal/domain"
	"wheelshare-backend/internal/repository"
)

const reservationColumns = `id, reference, client_id, vehicle_id, start_at, end_at, duration_minutes, total_cost_cents, currency, state, comment, created_on, updated_on`

type reservationRepository struct {
	db *sql.DB
}

func NewReservationRepository(db *sql.DB) repository.ReservationRepository {
	return &reservationRepository{db: db}
}

func scanReservation(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Reservation, error) {
	rv := &domain.Reservation{}
	err := row.Scan(&rv.ID, &rv.Reference, &rv.ClientID, &rv.VehicleID, &rv.StartAt, &rv.EndAt,
		&rv.DurationMins, &rv.TotalCost.Cents, &rv.TotalCost.Currency, &rv.State, &rv.Comment,
		&rv.CreatedOn, &rv.UpdatedOn)
	if err != nil {
		return nil, err
	}
	rv.StartAt = rv.StartAt.UTC()
	rv.EndAt = rv.EndAt.UTC()
	return rv, nil
}

func (r *reservationRepository) GetByID(ctx context.Context, id int32) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`
	rv, err := scanReservation(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("reservation %d: %w", id, domain.ErrNotFound)
	}
	return rv, err
}

func (r *reservationRepository) Update(ctx context.Context, rv *domain.Reservation) error {
	query := `UPDATE reservations
	          SET start_at=$1, end_at=$2, duration_minutes=$3, total_cost_cents=$4, currency=$5, state=$6, comment=$7, updated_on=$8
	          WHERE id=$9`
	_, err := r.db.ExecContext(ctx, query, rv.StartAt, rv.EndAt, rv.DurationMins,
		rv.TotalCost.Cents, rv.TotalCost.Currency, rv.State, rv.Comment, time.Now().UTC(), rv.ID)
	return err
}

func (r *reservationRepository) List(ctx context.Context, filter repository.ReservationFilter, page, pageSize int32) ([]domain.Reservation, int32, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * pageSize

	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE 1=1`
	args := []interface{}{}
	argIdx := 1
	if filter.ClientID != 0 {
		query += fmt.Sprintf(" AND client_id = $%d", argIdx)
		args = append(args, filter.ClientID)
		argIdx++
	}
	if filter.VehicleID != 0 {
		query += fmt.Sprintf(" AND vehicle_id = $%d", argIdx)
		args = append(args, filter.VehicleID)
		argIdx++
	}
	if filter.State != "" {
		query += fmt.Sprintf(" AND state = $%d", argIdx)
		args = append(args, filter.State)
		argIdx++
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") as sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(" ORDER BY created_on DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var reservations []domain.Reservation
	for rows.Next() {
		rv, err := scanReservation(rows)
		if err != nil {
			return nil, 0, err
		}
		reservations = append(reservations, *rv)
	}
	return reservations, count, rows.Err()
}

// rentalTx implements repository.RentalTx over a single *sql.Tx.
type rentalTx struct {
	tx   *sql.Tx
	done bool
}

// LockVehicle reads the vehicle row under FOR UPDATE. The lock serializes
// concurrent bookings of the same vehicle for the life of the transaction.
func (t *rentalTx) LockVehicle(ctx context.Context, vehicleID int32) (*domain.Vehicle, error) {
	v := &domain.Vehicle{}
	query := `SELECT id, make, model, plate_number, daily_rate_cents, rate_currency, status, created_on
	          FROM vehicles WHERE id = $1 FOR UPDATE`
	err := t.tx.QueryRowContext(ctx, query, vehicleID).Scan(&v.ID, &v.Make, &v.Model,
		&v.PlateNumber, &v.DailyRateCents, &v.RateCurrency, &v.Status, &v.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("vehicle %d: %w", vehicleID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

// CountOverlapping applies the strict interval overlap predicate: two
// half-open windows [s1,e1) and [s2,e2) collide iff s1 < e2 AND s2 < e1.
// A reservation ending exactly when another starts does not count.
func (t *rentalTx) CountOverlapping(ctx context.Context, vehicleID int32, start, end time.Time, excludeID int32) (int32, error) {
	query := `SELECT count(*) FROM reservations
	          WHERE vehicle_id = $1
	            AND state IN ('PENDING', 'CONFIRMED', 'ACTIVE', 'CANCELLATION_REQUESTED')
	            AND id <> $2
	            AND start_at < $3
	            AND $4 < end_at`
	var count int32
	err := t.tx.QueryRowContext(ctx, query, vehicleID, excludeID, end.UTC(), start.UTC()).Scan(&count)
	return count, err
}

func (t *rentalTx) CreateReservation(ctx context.Context, rv *domain.Reservation) error {
	query := `INSERT INTO reservations (reference, client_id, vehicle_id, start_at, end_at, duration_minutes, total_cost_cents, currency, state, comment, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`
	now := time.Now().UTC()
	rv.CreatedOn = now
	rv.UpdatedOn = now
	return t.tx.QueryRowContext(ctx, query, rv.Reference, rv.ClientID, rv.VehicleID,
		rv.StartAt, rv.EndAt, rv.DurationMins, rv.TotalCost.Cents, rv.TotalCost.Currency,
		rv.State, rv.Comment, rv.CreatedOn, rv.UpdatedOn).Scan(&rv.ID)
}

func (t *rentalTx) UpdateReservation(ctx context.Context, rv *domain.Reservation) error {
	query := `UPDATE reservations
	          SET start_at=$1, end_at=$2, duration_minutes=$3, total_cost_cents=$4, currency=$5, state=$6, comment=$7, updated_on=$8
	          WHERE id=$9`
	_, err := t.tx.ExecContext(ctx, query, rv.StartAt, rv.EndAt, rv.DurationMins,
		rv.TotalCost.Cents, rv.TotalCost.Currency, rv.State, rv.Comment, time.Now().UTC(), rv.ID)
	return err
}

func (t *rentalTx) Commit() error {
	if t.done {
		return nil
	}
	t.done = true
	return t.tx.Commit()
}

func (t *rentalTx) Rollback() error {
	if t.done {
		return nil
	}
	t.done = true
	return t.tx.Rollback()
}
