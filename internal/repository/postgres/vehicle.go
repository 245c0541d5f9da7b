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

type vehicleRepository struct {
	db *sql.DB
}

func NewVehicleRepository(db *sql.DB) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

func (r *vehicleRepository) GetByID(ctx context.Context, id int32) (*domain.Vehicle, error) {
	v := &domain.Vehicle{}
	query := `SELECT id, make, model, plate_number, daily_rate_cents, rate_currency, status, created_on
	          FROM vehicles WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&v.ID, &v.Make, &v.Model,
		&v.PlateNumber, &v.DailyRateCents, &v.RateCurrency, &v.Status, &v.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("vehicle %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

// UpdateStatus sets the coarse catalog flag. Availability truth stays in
// the reservations table.
func (r *vehicleRepository) UpdateStatus(ctx context.Context, id int32, status domain.VehicleStatus) error {
	query := `UPDATE vehicles SET status = $1 WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, status, id)
	return err
}

func (r *vehicleRepository) List(ctx context.Context, page, pageSize int32) ([]domain.Vehicle, int32, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * pageSize

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM vehicles WHERE status <> 'RETIRED'`).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, make, model, plate_number, daily_rate_cents, rate_currency, status, created_on
	          FROM vehicles WHERE status <> 'RETIRED' ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		var v domain.Vehicle
		var createdOn time.Time
		if err := rows.Scan(&v.ID, &v.Make, &v.Model, &v.PlateNumber,
			&v.DailyRateCents, &v.RateCurrency, &v.Status, &createdOn); err != nil {
			return nil, 0, err
		}
		v.CreatedOn = createdOn
		vehicles = append(vehicles, v)
	}
	return vehicles, count, rows.Err()
}
