package service

import (
	"context"
	"fmt"
	"time"

	"wheelshare-backend/internal/domain"
	"wheelshare-backend/internal/logger"
	"wheelshare-backend/internal/repository"
	"wheelshare-backend/internal/utils"

	"github.com/google/uuid"
)

type reservationService struct {
	txStore         repository.TxStore
	reservationRepo repository.ReservationRepository
	clientRepo      repository.ClientRepository
	vehicleRepo     repository.VehicleRepository
	noteRepo        repository.NotificationRepository
	emailSvc        EmailService
	clock           Clock
}

func NewReservationService(
	txStore repository.TxStore,
	reservationRepo repository.ReservationRepository,
	clientRepo repository.ClientRepository,
	vehicleRepo repository.VehicleRepository,
	noteRepo repository.NotificationRepository,
	emailSvc EmailService,
	clock Clock,
) ReservationService {
	return &reservationService{
		txStore:         txStore,
		reservationRepo: reservationRepo,
		clientRepo:      clientRepo,
		vehicleRepo:     vehicleRepo,
		noteRepo:        noteRepo,
		emailSvc:        emailSvc,
		clock:           clock,
	}
}

func (s *reservationService) CreateReservation(ctx context.Context, clientID, vehicleID int32, start, end time.Time, comment string) (*domain.Reservation, error) {
	period, err := domain.NewRentalPeriod(start, end)
	if err != nil {
		return nil, err
	}

	client, err := s.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	verified, err := s.clientRepo.HasVerifiedDocument(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if !verified {
		return nil, fmt.Errorf("client %d: %w", clientID, domain.ErrDocumentNotVerified)
	}

	// The vehicle row lock is held until commit; concurrent bookings for
	// the same vehicle resolve in lock-acquisition order.
	tx, err := s.txStore.BeginRentalTx(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	vehicle, err := tx.LockVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle.Status == domain.VehicleStatusRetired {
		return nil, fmt.Errorf("vehicle %d is retired: %w", vehicleID, domain.ErrVehicleUnavailable)
	}

	overlapping, err := tx.CountOverlapping(ctx, vehicleID, period.Start(), period.End(), 0)
	if err != nil {
		return nil, err
	}
	if overlapping > 0 {
		return nil, fmt.Errorf("vehicle %d has %d conflicting reservation(s) for %s: %w",
			vehicleID, overlapping, period, domain.ErrVehicleUnavailable)
	}

	cost, err := utils.CalculateRentalCost(vehicle, period)
	if err != nil {
		return nil, err
	}

	rv := &domain.Reservation{
		Reference:    uuid.NewString(),
		ClientID:     clientID,
		VehicleID:    vehicleID,
		StartAt:      period.Start(),
		EndAt:        period.End(),
		DurationMins: period.Minutes(),
		TotalCost:    cost,
		State:        domain.ReservationStatePending,
		Comment:      comment,
	}
	if err := tx.CreateReservation(ctx, rv); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.notify(ctx, client, vehicle, rv, "Reservation received",
		fmt.Sprintf("Your reservation for %s %s (%s) is pending review", vehicle.Make, vehicle.Model, period),
		"RESERVATION_CREATED",
		func() error {
			return s.emailSvc.SendReservationCreated(ctx, client.Email, client.Name, vehicleName(vehicle), rv.Reference)
		})

	return rv, nil
}

func (s *reservationService) UpdateReservation(ctx context.Context, clientID, reservationID int32, start, end time.Time) (*domain.Reservation, error) {
	period, err := domain.NewRentalPeriod(start, end)
	if err != nil {
		return nil, err
	}

	rv, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if rv.ClientID != clientID {
		return nil, fmt.Errorf("reservation %d does not belong to client %d: %w", reservationID, clientID, domain.ErrUnauthorized)
	}
	if rv.State != domain.ReservationStatePending && rv.State != domain.ReservationStateConfirmed {
		return nil, fmt.Errorf("%w: reservation %d cannot be rescheduled from %s", domain.ErrInvalidStateTransition, reservationID, rv.State)
	}

	tx, err := s.txStore.BeginRentalTx(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	vehicle, err := tx.LockVehicle(ctx, rv.VehicleID)
	if err != nil {
		return nil, err
	}
	// Re-check availability for the new window, ignoring this reservation.
	overlapping, err := tx.CountOverlapping(ctx, rv.VehicleID, period.Start(), period.End(), rv.ID)
	if err != nil {
		return nil, err
	}
	if overlapping > 0 {
		return nil, fmt.Errorf("vehicle %d has %d conflicting reservation(s) for %s: %w",
			rv.VehicleID, overlapping, period, domain.ErrVehicleUnavailable)
	}

	// The cost is never caller-supplied: it is recomputed whenever the
	// period changes. The state does not change on reschedule.
	cost, err := utils.CalculateRentalCost(vehicle, period)
	if err != nil {
		return nil, err
	}
	rv.StartAt = period.Start()
	rv.EndAt = period.End()
	rv.DurationMins = period.Minutes()
	rv.TotalCost = cost

	if err := tx.UpdateReservation(ctx, rv); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return rv, nil
}

func (s *reservationService) ConfirmReservation(ctx context.Context, reservationID int32) (*domain.Reservation, error) {
	rv, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if rv.State != domain.ReservationStatePending {
		return nil, fmt.Errorf("%w: reservation %d cannot be confirmed from %s", domain.ErrInvalidStateTransition, reservationID, rv.State)
	}
	rv.State = domain.ReservationStateConfirmed
	if err := s.reservationRepo.Update(ctx, rv); err != nil {
		return nil, err
	}

	_ = s.vehicleRepo.UpdateStatus(ctx, rv.VehicleID, domain.VehicleStatusReserved)
	s.notifyReservation(ctx, rv, "Reservation confirmed",
		"Your reservation has been confirmed", "RESERVATION_CONFIRMED",
		func(c *domain.Client, v *domain.Vehicle) error {
			return s.emailSvc.SendReservationConfirmed(ctx, c.Email, c.Name, vehicleName(v), rv.Reference)
		})
	return rv, nil
}

func (s *reservationService) CancelReservation(ctx context.Context, clientID, reservationID int32) error {
	rv, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return err
	}
	if rv.ClientID != clientID {
		return fmt.Errorf("reservation %d does not belong to client %d: %w", reservationID, clientID, domain.ErrUnauthorized)
	}
	days := domain.DaysUntilStart(rv.StartAt, s.clock.Now())
	target, err := domain.ResolveCancellationTarget(rv.State, days, domain.ActorOwner)
	if err != nil {
		return err
	}
	return s.applyCancellation(ctx, rv, target)
}

func (s *reservationService) AdminCancelReservation(ctx context.Context, reservationID int32) error {
	rv, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return err
	}
	days := domain.DaysUntilStart(rv.StartAt, s.clock.Now())
	target, err := domain.ResolveCancellationTarget(rv.State, days, domain.ActorOperator)
	if err != nil {
		return err
	}
	return s.applyCancellation(ctx, rv, target)
}

func (s *reservationService) ConfirmCancellation(ctx context.Context, reservationID int32) error {
	rv, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return err
	}
	if rv.State == domain.ReservationStateCancelled {
		return nil
	}
	if rv.State != domain.ReservationStateCancellationRequested {
		return fmt.Errorf("%w: reservation %d has no pending cancellation request (state %s)", domain.ErrInvalidStateTransition, reservationID, rv.State)
	}
	return s.applyCancellation(ctx, rv, domain.ReservationStateCancelled)
}

// applyCancellation persists a policy-resolved cancellation target.
// Cancelling an already-cancelled reservation is an idempotent no-op.
func (s *reservationService) applyCancellation(ctx context.Context, rv *domain.Reservation, target domain.ReservationState) error {
	if rv.State == domain.ReservationStateCancelled && target == domain.ReservationStateCancelled {
		return nil
	}
	if err := domain.ValidateTransition(rv.State, target); err != nil {
		return err
	}
	rv.State = target
	if err := s.reservationRepo.Update(ctx, rv); err != nil {
		return err
	}

	switch target {
	case domain.ReservationStateCancelled:
		_ = s.vehicleRepo.UpdateStatus(ctx, rv.VehicleID, domain.VehicleStatusAvailable)
		s.notifyReservation(ctx, rv, "Reservation cancelled",
			"Your reservation has been cancelled", "RESERVATION_CANCELLED",
			func(c *domain.Client, v *domain.Vehicle) error {
				return s.emailSvc.SendReservationCancelled(ctx, c.Email, c.Name, vehicleName(v), rv.Reference)
			})
	case domain.ReservationStateCancellationRequested:
		s.notifyReservation(ctx, rv, "Cancellation requested",
			"Your cancellation request awaits operator confirmation", "CANCELLATION_REQUESTED",
			func(c *domain.Client, v *domain.Vehicle) error {
				return s.emailSvc.SendCancellationRequested(ctx, c.Email, c.Name, vehicleName(v), rv.Reference)
			})
	}
	return nil
}

func (s *reservationService) GetReservation(ctx context.Context, clientID, reservationID int32) (*domain.Reservation, error) {
	rv, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if rv.ClientID != clientID {
		return nil, fmt.Errorf("reservation %d does not belong to client %d: %w", reservationID, clientID, domain.ErrUnauthorized)
	}
	// Display-only promotion; the stored state is only advanced by the
	// lifecycle scheduler.
	rv.State = domain.DisplayState(rv, s.clock.Now())
	return rv, nil
}

func (s *reservationService) ListReservations(ctx context.Context, filter repository.ReservationFilter, page, pageSize int32) ([]domain.Reservation, int32, error) {
	reservations, count, err := s.reservationRepo.List(ctx, filter, page, pageSize)
	if err != nil {
		return nil, 0, err
	}
	now := s.clock.Now()
	for i := range reservations {
		reservations[i].State = domain.DisplayState(&reservations[i], now)
	}
	return reservations, count, nil
}

func vehicleName(v *domain.Vehicle) string {
	return fmt.Sprintf("%s %s (%s)", v.Make, v.Model, v.PlateNumber)
}

// notifyReservation looks up the client and vehicle for a reservation and
// fans out the in-app notification plus email. Best effort only.
func (s *reservationService) notifyReservation(ctx context.Context, rv *domain.Reservation, title, message, kind string, send func(*domain.Client, *domain.Vehicle) error) {
	client, err := s.clientRepo.GetByID(ctx, rv.ClientID)
	if err != nil {
		logger.Warn("Skipping notification, client lookup failed", "reservation_id", rv.ID, "error", err)
		return
	}
	vehicle, err := s.vehicleRepo.GetByID(ctx, rv.VehicleID)
	if err != nil {
		logger.Warn("Skipping notification, vehicle lookup failed", "reservation_id", rv.ID, "error", err)
		return
	}
	s.notify(ctx, client, vehicle, rv, title, message, kind, func() error { return send(client, vehicle) })
}

func (s *reservationService) notify(ctx context.Context, client *domain.Client, vehicle *domain.Vehicle, rv *domain.Reservation, title, message, kind string, send func() error) {
	if err := send(); err != nil {
		logger.Warn("Failed to send reservation email", "reservation_id", rv.ID, "kind", kind, "error", err)
	}
	note := &domain.Notification{
		ClientID: client.ID,
		Title:    title,
		Message:  message,
		Attributes: map[string]string{
			"type":           kind,
			"reservation_id": fmt.Sprintf("%d", rv.ID),
			"reference":      rv.Reference,
		},
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		logger.Warn("Failed to record notification", "reservation_id", rv.ID, "kind", kind, "error", err)
	}
}
