package errors

import "fmt"

// BackendUnavailableError signals a transient transport failure while
// reading from, writing to, or subscribing against the backend.
type BackendUnavailableError struct {
	Message string
	Cause   error
}

func (e *BackendUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *BackendUnavailableError) Unwrap() error {
	return e.Cause
}

func NewBackendUnavailableError(message string, cause error) *BackendUnavailableError {
	return &BackendUnavailableError{
		Message: message,
		Cause:   cause,
	}
}

func IsBackendUnavailableError(err error) (*BackendUnavailableError, bool) {
	if be, ok := err.(*BackendUnavailableError); ok {
		return be, true
	}
	return nil, false
}

// InvalidStatusError is returned when a caller supplies a status outside the
// four-tag enumeration. Validation happens before any I/O.
type InvalidStatusError struct {
	Status string
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("invalid order status %q", e.Status)
}

func NewInvalidStatusError(status string) *InvalidStatusError {
	return &InvalidStatusError{Status: status}
}

func IsInvalidStatusError(err error) (*InvalidStatusError, bool) {
	if ie, ok := err.(*InvalidStatusError); ok {
		return ie, true
	}
	return nil, false
}

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

func IsNotFoundError(err error) (*NotFoundError, bool) {
	if nfe, ok := err.(*NotFoundError); ok {
		return nfe, true
	}
	return nil, false
}
