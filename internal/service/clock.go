package service

import "time"

// Clock abstracts wall-clock access so lifecycle guards and the day-5
// cancellation threshold can be tested deterministically.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now().UTC() }

func NewRealClock() Clock { return realClock{} }
