package core

import "github.com/pkg/errors"

// FieldError ties a validation failure to the form field that caused
// it, keyed by the field's JSON name as rendered to the client.
type FieldError struct {
	Field string
	Error string
}

// ValidationError is reported when a login, signup, contact or
// newsletter payload fails its checks. Fields carries the per-field
// messages; Err covers failures not tied to a single field.
type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{Err: err, Fields: flds}
}

func (err *ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

// shutdownError asks the API server for a graceful stop. The HTTP
// error handler checks for it after reporting the failure.
type shutdownError struct {
	message string
}

func NewShutdownError(msg string) error {
	return &shutdownError{message: msg}
}

func (s *shutdownError) Error() string {
	return s.message
}

// IsShutdown reports whether err, at its cause, requests a shutdown.
func IsShutdown(err error) bool {
	_, ok := errors.Cause(err).(*shutdownError)
	return ok
}
