package repository

import (
	"context"
	"time"

	"wheelshare-backend/internal/domain"
)

type ClientRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.Client, error)
	// HasVerifiedDocument reports whether the client has at least one
	// driving document in VERIFIED status.
	HasVerifiedDocument(ctx context.Context, clientID int32) (bool, error)
}

type VehicleRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.Vehicle, error)
	UpdateStatus(ctx context.Context, id int32, status domain.VehicleStatus) error
	List(ctx context.Context, page, pageSize int32) ([]domain.Vehicle, int32, error)
}

// ReservationFilter narrows a reservation listing. Zero values mean "any".
type ReservationFilter struct {
	ClientID  int32
	VehicleID int32
	State     domain.ReservationState
}

type ReservationRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.Reservation, error)
	Update(ctx context.Context, r *domain.Reservation) error
	List(ctx context.Context, filter ReservationFilter, page, pageSize int32) ([]domain.Reservation, int32, error)
}

// RentalTx is one booking transaction. LockVehicle takes a row-level lock
// on the vehicle that is held until Commit or Rollback, serializing
// concurrent booking attempts against the same vehicle. Rollback after
// Commit is a no-op, so it can be deferred unconditionally.
type RentalTx interface {
	LockVehicle(ctx context.Context, vehicleID int32) (*domain.Vehicle, error)
	// CountOverlapping counts reservations for the vehicle in a blocking
	// state whose window strictly overlaps [start, end). excludeID skips
	// one reservation, used when re-checking a reservation being updated;
	// pass 0 to exclude nothing.
	CountOverlapping(ctx context.Context, vehicleID int32, start, end time.Time, excludeID int32) (int32, error)
	CreateReservation(ctx context.Context, r *domain.Reservation) error
	UpdateReservation(ctx context.Context, r *domain.Reservation) error
	Commit() error
	Rollback() error
}

// TxStore opens booking transactions.
type TxStore interface {
	BeginRentalTx(ctx context.Context) (RentalTx, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, clientID int32, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id, clientID int32) error
}
