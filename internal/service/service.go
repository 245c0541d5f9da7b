package service

import (
	"context"
	"time"

	"wheelshare-backend/internal/domain"
	"wheelshare-backend/internal/repository"
)

type ReservationService interface {
	CreateReservation(ctx context.Context, clientID, vehicleID int32, start, end time.Time, comment string) (*domain.Reservation, error)
	UpdateReservation(ctx context.Context, clientID, reservationID int32, start, end time.Time) (*domain.Reservation, error)
	ConfirmReservation(ctx context.Context, reservationID int32) (*domain.Reservation, error)
	CancelReservation(ctx context.Context, clientID, reservationID int32) error
	AdminCancelReservation(ctx context.Context, reservationID int32) error
	ConfirmCancellation(ctx context.Context, reservationID int32) error
	GetReservation(ctx context.Context, clientID, reservationID int32) (*domain.Reservation, error)
	ListReservations(ctx context.Context, filter repository.ReservationFilter, page, pageSize int32) ([]domain.Reservation, int32, error)
}

type NotificationService interface {
	GetNotifications(ctx context.Context, clientID int32, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, clientID, notificationID int32) error
}

// EmailService is a best-effort notification sink. Send failures are
// logged by callers and never roll back a reservation transaction.
type EmailService interface {
	SendReservationCreated(ctx context.Context, email, clientName, vehicleName, reference string) error
	SendReservationConfirmed(ctx context.Context, email, clientName, vehicleName, reference string) error
	SendCancellationRequested(ctx context.Context, email, clientName, vehicleName, reference string) error
	SendReservationCancelled(ctx context.Context, email, clientName, vehicleName, reference string) error
	SendPickupReminder(ctx context.Context, email, clientName, vehicleName string, startAt time.Time) error
}
