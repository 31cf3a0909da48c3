package errs

import (
	"errors"
)

// Error classes surfaced to callers. Concrete errors are marked with exactly one of them.
var (
	ErrValidation     = New("validation error")
	ErrConflict       = New("conflict")
	ErrNotFound       = New("not found")
	ErrExpired        = New("expired")
	ErrTransientStore = New("transient store failure")
	ErrForbidden      = New("forbidden")
)

func Validation(msg string) error { return Mark(New(msg), ErrValidation) }
func Conflict(msg string) error   { return Mark(New(msg), ErrConflict) }
func NotFound(msg string) error   { return Mark(New(msg), ErrNotFound) }
func Expired(msg string) error    { return Mark(New(msg), ErrExpired) }
func Forbidden(msg string) error  { return Mark(New(msg), ErrForbidden) }

// Transient marks a store failure while keeping the original cause in the chain.
func Transient(err error) error {
	if err == nil {
		return nil
	}
	return Mark(err, ErrTransientStore)
}

// ResourceRef points at the entity a ConflictError collided with.
type ResourceRef struct {
	Kind string `json:"resource"`
	ID   string `json:"id"`
}

type resourceError struct {
	cause error
	ref   ResourceRef
}

func (e *resourceError) Error() string { return e.cause.Error() }
func (e *resourceError) Unwrap() error { return e.cause }

func WithResource(err error, kind, id string) error {
	if err == nil {
		return nil
	}
	return &resourceError{cause: err, ref: ResourceRef{Kind: kind, ID: id}}
}

func ResourceOf(err error) (ResourceRef, bool) {
	var re *resourceError
	if errors.As(err, &re) {
		return re.ref, true
	}
	return ResourceRef{}, false
}
