package domain

import (
	"errors"
	"fmt"
)

// NotFoundError reports a missing slot, day, appointment, service or barber.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.Key)
}

// DuplicateSlotError is returned when a slot is inserted at a time the day already holds.
type DuplicateSlotError struct {
	BarberID uint
	Date     string
	Time     string
}

func (e *DuplicateSlotError) Error() string {
	return fmt.Sprintf("slot already exists: barber %d on %s at %s", e.BarberID, e.Date, e.Time)
}

// ConflictError names the first slot of a requested run that is not open.
// State is empty when the run needs a slot the day does not have.
type ConflictError struct {
	BarberID uint
	Date     string
	Time     string
	State    string
}

func (e *ConflictError) Error() string {
	if e.State == "" {
		return fmt.Sprintf("slot conflict: barber %d has no slot on %s at %s", e.BarberID, e.Date, e.Time)
	}
	return fmt.Sprintf("slot conflict: barber %d slot on %s at %s is %s", e.BarberID, e.Date, e.Time, e.State)
}

// InvalidStateError reports an illegal transition. Code is a stable
// machine-readable identifier (e.g. "slot_booked", "appointment_terminal").
type InvalidStateError struct {
	Code   string
	Detail string
}

func (e *InvalidStateError) Error() string {
	if e.Detail == "" {
		return e.Code
	}
	return e.Code + ": " + e.Detail
}

func NotFound(resource, key string) error {
	return &NotFoundError{Resource: resource, Key: key}
}

func InvalidState(code, format string, args ...any) error {
	return &InvalidStateError{Code: code, Detail: fmt.Sprintf(format, args...)}
}

func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

func IsDuplicateSlot(err error) bool {
	var e *DuplicateSlotError
	return errors.As(err, &e)
}

func IsConflict(err error) bool {
	var e *ConflictError
	return errors.As(err, &e)
}

func IsInvalidState(err error) bool {
	var e *InvalidStateError
	return errors.As(err, &e)
}

// StateCode returns the InvalidStateError code carried by err, or "".
func StateCode(err error) string {
	var e *InvalidStateError
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
