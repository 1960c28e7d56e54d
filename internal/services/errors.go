package services

import "fmt"

// ValidationError aggregates every field failure of one submission into
// a single human-readable message (HTTP 400).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// StoreError means the append-only store could not be opened or written.
// Fatal for the request (HTTP 500).
type StoreError struct {
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("could not save subscription: %s", e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// DeliveryError means the mail relay rejected or failed the send. Fatal
// for the request, but the storage append is NOT rolled back; the
// record stays durably recorded even though the caller sees a failure.
type DeliveryError struct {
	Err error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("email could not be sent: %s", e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}
