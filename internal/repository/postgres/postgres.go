package postgres

import (
	"context"
	"database/sql"

	"wheelshare-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.ClientRepository
	repository.VehicleRepository
	repository.ReservationRepository
	repository.NotificationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		ClientRepository:       NewClientRepository(db),
		VehicleRepository:      NewVehicleRepository(db),
		ReservationRepository:  NewReservationRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}

// BeginRentalTx opens a booking transaction. The vehicle row lock taken by
// LockVehicle is held until Commit or Rollback.
func (s *Store) BeginRentalTx(ctx context.Context) (repository.RentalTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &rentalTx{tx: tx}, nil
}
