package domain

import (
	"fmt"
	"time"
)

// cancellationNoticeDays is the threshold below which an owner-initiated
// cancellation requires operator counter-confirmation.
const cancellationNoticeDays = 5

// DaysUntilStart counts whole days between now and the reservation start,
// both taken as UTC instants. Negative when the start has passed.
func DaysUntilStart(start, now time.Time) int {
	return int(start.UTC().Sub(now.UTC()).Hours() / 24)
}

// ResolveCancellationTarget decides the state a cancellation lands in.
// Operators cancel outright from any non-terminal state, including a
// pending cancellation request. Owners cancel outright only with more
// than five days of notice; closer to the start the reservation moves to
// CANCELLATION_REQUESTED and waits for the operator.
//
// Cancelling an already-cancelled reservation resolves to CANCELLED again;
// the caller treats that as an idempotent no-op.
func ResolveCancellationTarget(current ReservationState, daysUntilStart int, actor Actor) (ReservationState, error) {
	if current == ReservationStateCancelled {
		return ReservationStateCancelled, nil
	}
	switch actor {
	case ActorOperator:
		switch current {
		case ReservationStatePending, ReservationStateConfirmed, ReservationStateCancellationRequested:
			return ReservationStateCancelled, nil
		}
	case ActorOwner:
		switch current {
		case ReservationStatePending, ReservationStateConfirmed:
			if daysUntilStart > cancellationNoticeDays {
				return ReservationStateCancelled, nil
			}
			return ReservationStateCancellationRequested, nil
		}
	}
	return "", fmt.Errorf("%w: cannot cancel from %s as %s", ErrInvalidStateTransition, current, actor)
}
