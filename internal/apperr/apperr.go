// Package apperr holds the error taxonomy shared by the talent-bank services.
package apperr

import (
	"errors"
	"fmt"

	"talent-bank/internal/storage"
)

// NotFoundError means a referenced candidate, job or suggestion does not exist.
type NotFoundError struct {
	Entity string
	ID     any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %v not found", e.Entity, e.ID)
}

// DuplicateSuggestionError is returned when a suggestion already exists for
// the (candidate, job) pair, whatever its state.
type DuplicateSuggestionError struct {
	CandidateID int64
	JobID       int64
}

func (e *DuplicateSuggestionError) Error() string {
	return fmt.Sprintf("job %d was already suggested to candidate %d", e.JobID, e.CandidateID)
}

// DeliveryError is a failed in-app or email delivery. It is recorded as a
// false flag and never returned from suggestion creation.
type DeliveryError struct {
	Channel string
	Err     error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("%s delivery failed: %v", e.Channel, e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }

// TransportError wraps a network, timeout or database failure. The operation
// is considered not to have happened and may be retried.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot move suggestion from %s to %s", e.From, e.To)
}

// ConflictError covers other business-rule clashes, such as adding a
// candidate to the talent bank twice.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string { return e.Reason }

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Transport wraps err as a TransportError unless it already is a domain error.
func Transport(op string, err error) error {
	if err == nil {
		return nil
	}
	var te *TransportError
	if IsDomain(err) || errors.As(err, &te) {
		return err
	}
	return &TransportError{Op: op, Err: err}
}

// FromStorage maps storage sentinels onto domain errors for the given entity.
func FromStorage(op, entity string, id any, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, storage.ErrNotFound):
		return &NotFoundError{Entity: entity, ID: id}
	default:
		return Transport(op, err)
	}
}

// IsDomain reports whether err is one of the business-rule errors above
// rather than an infrastructure failure.
func IsDomain(err error) bool {
	var (
		nf  *NotFoundError
		dup *DuplicateSuggestionError
		it  *InvalidTransitionError
		ce  *ConflictError
		ve  *ValidationError
	)
	return errors.As(err, &nf) || errors.As(err, &dup) || errors.As(err, &it) ||
		errors.As(err, &ce) || errors.As(err, &ve)
}
