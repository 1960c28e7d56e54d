package services

import "time"

// Clock abstracts wall-clock time so tests can pin it.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func NewClock() Clock {
	return realClock{}
}
