package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to ReservationState }{
		{ReservationStatePending, ReservationStateConfirmed},
		{ReservationStatePending, ReservationStateCancelled},
		{ReservationStatePending, ReservationStateCancellationRequested},
		{ReservationStateConfirmed, ReservationStateActive},
		{ReservationStateConfirmed, ReservationStateCancelled},
		{ReservationStateConfirmed, ReservationStateCancellationRequested},
		{ReservationStateCancellationRequested, ReservationStateCancelled},
		{ReservationStateActive, ReservationStateCompleted},
	}
	for _, tr := range allowed {
		assert.True(t, CanTransition(tr.from, tr.to), "%s -> %s should be legal", tr.from, tr.to)
	}

	rejected := []struct{ from, to ReservationState }{
		{ReservationStatePending, ReservationStateActive},
		{ReservationStatePending, ReservationStateCompleted},
		{ReservationStateActive, ReservationStateCancelled},
		{ReservationStateCancelled, ReservationStateConfirmed},
		{ReservationStateCompleted, ReservationStateActive},
		{ReservationStateCancellationRequested, ReservationStateConfirmed},
	}
	for _, tr := range rejected {
		assert.False(t, CanTransition(tr.from, tr.to), "%s -> %s should be rejected", tr.from, tr.to)
	}
}

func TestValidateTransition(t *testing.T) {
	assert.NoError(t, ValidateTransition(ReservationStatePending, ReservationStateConfirmed))
	assert.ErrorIs(t, ValidateTransition(ReservationStateCompleted, ReservationStateActive), ErrInvalidStateTransition)
}

func TestTerminalStates(t *testing.T) {
	assert.True(t, ReservationStateCancelled.IsTerminal())
	assert.True(t, ReservationStateCompleted.IsTerminal())
	assert.False(t, ReservationStatePending.IsTerminal())
	assert.False(t, ReservationStateActive.IsTerminal())
}

func TestBlockingStates(t *testing.T) {
	blocking := BlockingStates()
	assert.Contains(t, blocking, ReservationStatePending)
	assert.Contains(t, blocking, ReservationStateConfirmed)
	assert.Contains(t, blocking, ReservationStateActive)
	assert.Contains(t, blocking, ReservationStateCancellationRequested)
	assert.NotContains(t, blocking, ReservationStateCancelled)
	assert.NotContains(t, blocking, ReservationStateCompleted)
}

func TestDisplayState(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("ConfirmedWithStartPassedReadsActive", func(t *testing.T) {
		rv := &Reservation{State: ReservationStateConfirmed, StartAt: now.Add(-time.Hour)}
		assert.Equal(t, ReservationStateActive, DisplayState(rv, now))
		// the stored record is untouched
		assert.Equal(t, ReservationStateConfirmed, rv.State)
	})

	t.Run("ConfirmedWithFutureStartStaysConfirmed", func(t *testing.T) {
		rv := &Reservation{State: ReservationStateConfirmed, StartAt: now.Add(time.Hour)}
		assert.Equal(t, ReservationStateConfirmed, DisplayState(rv, now))
	})

	t.Run("PendingIsNeverPromoted", func(t *testing.T) {
		rv := &Reservation{State: ReservationStatePending, StartAt: now.Add(-time.Hour)}
		assert.Equal(t, ReservationStatePending, DisplayState(rv, now))
	})
}
