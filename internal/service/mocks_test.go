package service_test

import (
	"context"
	"time"

	"wheelshare-backend/internal/domain"
	"wheelshare-backend/internal/repository"

	"github.com/stretchr/testify/mock"
)

// MockTxStore
type MockTxStore struct {
	mock.Mock
}

func (m *MockTxStore) BeginRentalTx(ctx context.Context) (repository.RentalTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.RentalTx), args.Error(1)
}

// MockRentalTx
type MockRentalTx struct {
	mock.Mock
}

func (m *MockRentalTx) LockVehicle(ctx context.Context, vehicleID int32) (*domain.Vehicle, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

func (m *MockRentalTx) CountOverlapping(ctx context.Context, vehicleID int32, start, end time.Time, excludeID int32) (int32, error) {
	args := m.Called(ctx, vehicleID, start, end, excludeID)
	return args.Get(0).(int32), args.Error(1)
}

func (m *MockRentalTx) CreateReservation(ctx context.Context, r *domain.Reservation) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRentalTx) UpdateReservation(ctx context.Context, r *domain.Reservation) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRentalTx) Commit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockRentalTx) Rollback() error {
	args := m.Called()
	return args.Error(0)
}

// MockReservationRepo
type MockReservationRepo struct {
	mock.Mock
}

func (m *MockReservationRepo) GetByID(ctx context.Context, id int32) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationRepo) Update(ctx context.Context, r *domain.Reservation) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReservationRepo) List(ctx context.Context, filter repository.ReservationFilter, page, pageSize int32) ([]domain.Reservation, int32, error) {
	args := m.Called(ctx, filter, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int32), args.Error(2)
	}
	return args.Get(0).([]domain.Reservation), args.Get(1).(int32), args.Error(2)
}

// MockClientRepo
type MockClientRepo struct {
	mock.Mock
}

func (m *MockClientRepo) GetByID(ctx context.Context, id int32) (*domain.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepo) HasVerifiedDocument(ctx context.Context, clientID int32) (bool, error) {
	args := m.Called(ctx, clientID)
	return args.Bool(0), args.Error(1)
}

// MockVehicleRepo
type MockVehicleRepo struct {
	mock.Mock
}

func (m *MockVehicleRepo) GetByID(ctx context.Context, id int32) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

func (m *MockVehicleRepo) UpdateStatus(ctx context.Context, id int32, status domain.VehicleStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockVehicleRepo) List(ctx context.Context, page, pageSize int32) ([]domain.Vehicle, int32, error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int32), args.Error(2)
	}
	return args.Get(0).([]domain.Vehicle), args.Get(1).(int32), args.Error(2)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockNotificationRepo) List(ctx context.Context, clientID int32, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, clientID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int32), args.Error(2)
	}
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}

func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id, clientID int32) error {
	args := m.Called(ctx, id, clientID)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendReservationCreated(ctx context.Context, email, clientName, vehicleName, reference string) error {
	args := m.Called(ctx, email, clientName, vehicleName, reference)
	return args.Error(0)
}

func (m *MockEmailService) SendReservationConfirmed(ctx context.Context, email, clientName, vehicleName, reference string) error {
	args := m.Called(ctx, email, clientName, vehicleName, reference)
	return args.Error(0)
}

func (m *MockEmailService) SendCancellationRequested(ctx context.Context, email, clientName, vehicleName, reference string) error {
	args := m.Called(ctx, email, clientName, vehicleName, reference)
	return args.Error(0)
}

func (m *MockEmailService) SendReservationCancelled(ctx context.Context, email, clientName, vehicleName, reference string) error {
	args := m.Called(ctx, email, clientName, vehicleName, reference)
	return args.Error(0)
}

func (m *MockEmailService) SendPickupReminder(ctx context.Context, email, clientName, vehicleName string, startAt time.Time) error {
	args := m.Called(ctx, email, clientName, vehicleName, startAt)
	return args.Error(0)
}

// fixedClock pins Now for deterministic lifecycle guards.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }
