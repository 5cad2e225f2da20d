// Package apperror holds the error kinds shared by the mapping, service and
// transport layers. Each kind is a struct carrying context plus a sentinel so
// callers can match with errors.Is without caring about the details.
package apperror

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMapping                = errors.New("mapping failed")
	ErrUnrecognizedEnumValue  = errors.New("unrecognized enum value")
	ErrNotFound               = errors.New("not found")
	ErrPersistence            = errors.New("persistence failure")
	ErrConcurrentModification = errors.New("concurrent modification")
	ErrAuthorization          = errors.New("access denied")
	ErrAuthentication         = errors.New("authentication failed")
	ErrValidation             = errors.New("validation failed")
)

// MappingError reports a field conversion failure between a transfer object
// and its entity.
type MappingError struct {
	From  string
	To    string
	Field string
	Err   error
}

func (e *MappingError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "cannot map %s to %s", e.From, e.To)
	if e.Field != "" {
		fmt.Fprintf(&b, " (field %q)", e.Field)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *MappingError) Unwrap() error        { return e.Err }
func (e *MappingError) Is(target error) bool { return target == ErrMapping }

// UnrecognizedEnumValue is returned when a string does not match any declared
// variant of an enumeration. Matching is exact and case-sensitive.
type UnrecognizedEnumValue struct {
	Enum  string
	Value string
}

func (e *UnrecognizedEnumValue) Error() string {
	return fmt.Sprintf("unrecognized %s value %q", e.Enum, e.Value)
}

func (e *UnrecognizedEnumValue) Is(target error) bool { return target == ErrUnrecognizedEnumValue }

// NotFoundError means the lookup completed and yielded nothing.
type NotFoundError struct {
	Resource string
	Key      any
}

func NewNotFoundError(resource string, key any) *NotFoundError {
	return &NotFoundError{Resource: resource, Key: key}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %v not found", e.Resource, e.Key)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// PersistenceError wraps an infrastructure failure of the underlying store.
type PersistenceError struct {
	Op  string
	Err error
}

func NewPersistenceError(op string, err error) *PersistenceError {
	return &PersistenceError{Op: op, Err: err}
}

func (e *PersistenceError) Error() string {
	if e.Err == nil {
		return e.Op + ": persistence failure"
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error        { return e.Err }
func (e *PersistenceError) Is(target error) bool { return target == ErrPersistence }

// ConcurrentModificationError is an optimistic lock conflict: the row was
// changed by someone else since Version was read.
type ConcurrentModificationError struct {
	Resource string
	Id       int64
	Version  int64
}

func (e *ConcurrentModificationError) Error() string {
	return fmt.Sprintf("%s %d was modified concurrently (expected version %d)", e.Resource, e.Id, e.Version)
}

func (e *ConcurrentModificationError) Is(target error) bool {
	return target == ErrConcurrentModification
}

// AuthorizationError is raised before an operation body runs when the caller
// holds none of the required roles.
type AuthorizationError struct {
	Operation string
	Required  []string
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("access denied to %s: requires one of [%s]", e.Operation, strings.Join(e.Required, ", "))
}

func (e *AuthorizationError) Is(target error) bool { return target == ErrAuthorization }

// AuthenticationError means the caller could not be identified: bad
// credentials, an unusable account or an unknown refresh token.
type AuthenticationError struct {
	Reason string
}

func (e *AuthenticationError) Error() string {
	return "authentication failed: " + e.Reason
}

func (e *AuthenticationError) Is(target error) bool { return target == ErrAuthentication }

type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists the constraint violations of a transfer object.
type ValidationError struct {
	Violations []FieldViolation
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Violations: []FieldViolation{{Field: field, Message: message}}}
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
