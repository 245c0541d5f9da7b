package domain

import "errors"

// Domain error taxonomy. Services wrap these sentinels with context; the
// HTTP layer maps them to status codes with errors.Is.
var (
	// ErrNotFound covers missing reservations, vehicles and clients.
	ErrNotFound = errors.New("not found")

	// ErrInvalidDateRange covers inverted or out-of-bounds rental windows.
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrVehicleUnavailable means the vehicle is already reserved for an
	// overlapping window.
	ErrVehicleUnavailable = errors.New("vehicle unavailable for requested period")

	// ErrInvalidStateTransition means the requested lifecycle transition
	// has no matching rule from the reservation's current state.
	ErrInvalidStateTransition = errors.New("invalid state transition")

	// ErrUnauthorized means the actor does not own the reservation.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrDocumentNotVerified means the client has no verified driving
	// document on file.
	ErrDocumentNotVerified = errors.New("driving document missing or not verified")
)
