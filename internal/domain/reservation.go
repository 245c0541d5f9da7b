package domain

import (
	"fmt"
	"time"
)

type ReservationState string

const (
	ReservationStatePending               ReservationState = "PENDING"
	ReservationStateConfirmed             ReservationState = "CONFIRMED"
	ReservationStateActive                ReservationState = "ACTIVE"
	ReservationStateCompleted             ReservationState = "COMPLETED"
	ReservationStateCancellationRequested ReservationState = "CANCELLATION_REQUESTED"
	ReservationStateCancelled             ReservationState = "CANCELLED"
)

// Actor identifies who triggers a lifecycle transition.
type Actor string

const (
	ActorOwner    Actor = "OWNER"    // the reserving client
	ActorOperator Actor = "OPERATOR" // administrative staff
	ActorSystem   Actor = "SYSTEM"   // the lifecycle scheduler
)

// Reservation is a time-bounded claim on one vehicle by one client. It
// holds ids only; vehicle and client records are fetched through their
// repositories, never navigated through object references.
type Reservation struct {
	ID            int32            `json:"id"`
	Reference     string           `json:"reference"`
	ClientID      int32            `json:"client_id"`
	VehicleID     int32            `json:"vehicle_id"`
	StartAt       time.Time        `json:"start_at"`
	EndAt         time.Time        `json:"end_at"`
	DurationMins  int64            `json:"duration_minutes"`
	TotalCost     Money            `json:"total_cost"`
	State         ReservationState `json:"state"`
	Comment       string           `json:"comment"`
	CreatedOn     time.Time        `json:"created_on"`
	UpdatedOn     time.Time        `json:"updated_on"`
}

// Period rebuilds the value object from the persisted instants.
func (r *Reservation) Period() (RentalPeriod, error) {
	return NewRentalPeriod(r.StartAt, r.EndAt)
}

// allowedTransitions is the closed set of legal lifecycle moves. The key
// is the current state, the value the reachable target states. Guards
// (actor, day-5 threshold, time boundaries) live in the service layer and
// the cancellation policy; this table only encodes reachability.
var allowedTransitions = map[ReservationState][]ReservationState{
	ReservationStatePending: {
		ReservationStateConfirmed,
		ReservationStateCancellationRequested,
		ReservationStateCancelled,
	},
	ReservationStateConfirmed: {
		ReservationStateActive,
		ReservationStateCancellationRequested,
		ReservationStateCancelled,
	},
	ReservationStateCancellationRequested: {
		ReservationStateCancelled,
	},
	ReservationStateActive: {
		ReservationStateCompleted,
	},
	ReservationStateCancelled: {}, // terminal
	ReservationStateCompleted: {}, // terminal
}

// CanTransition reports whether moving from one state to another is legal.
func CanTransition(from, to ReservationState) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// ValidateTransition returns ErrInvalidStateTransition if the move is not
// in the transition table.
func ValidateTransition(from, to ReservationState) error {
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidStateTransition, from, to)
	}
	return nil
}

// BlockingStates are the states in which a reservation still occupies its
// vehicle for availability purposes.
func BlockingStates() []ReservationState {
	return []ReservationState{
		ReservationStatePending,
		ReservationStateConfirmed,
		ReservationStateActive,
		ReservationStateCancellationRequested,
	}
}

// IsTerminal reports whether no further transition can leave the state.
func (s ReservationState) IsTerminal() bool {
	return s == ReservationStateCancelled || s == ReservationStateCompleted
}

// DisplayState projects the state a reader should see at the given
// instant. A CONFIRMED reservation whose start has passed reads as ACTIVE
// without touching the stored record; only the scheduler persists the
// promotion.
func DisplayState(r *Reservation, now time.Time) ReservationState {
	if r.State == ReservationStateConfirmed && !now.UTC().Before(r.StartAt) {
		return ReservationStateActive
	}
	return r.State
}
