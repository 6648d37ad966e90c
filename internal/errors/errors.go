// Package errors defines the coded error taxonomy used across runcat.
package errors

import (
	"errors"
	"fmt"
)

// Error codes.
const (
	ErrSensor   = "SENSOR"
	ErrAsset    = "ASSET"
	ErrSettings = "SETTINGS"
	ErrSignal   = "SIGNAL"
	ErrConfig   = "CONFIG"
	ErrInstance = "INSTANCE"
)

// Error is a structured error with a code, message, optional suggestion and cause.
type Error struct {
	Code       string
	Message    string
	Suggestion string
	Cause      error
}

// New creates a structured error.
func New(code, message, suggestion string) *Error {
	return &Error{Code: code, Message: message, Suggestion: suggestion}
}

// WrapWithCode wraps err with a code, message and suggestion.
func WrapWithCode(err error, code, message, suggestion string) *Error {
	return &Error{Code: code, Message: message, Suggestion: suggestion, Cause: err}
}

// SensorUnavailable reports a metric source that could not be read.
func SensorUnavailable(sensor string, cause error) *Error {
	return WrapWithCode(cause, ErrSensor, fmt.Sprintf("%s sensor unavailable", sensor), "")
}

// MissingAsset reports an icon frame that is not packaged.
func MissingAsset(name string) *Error {
	return New(ErrAsset, fmt.Sprintf("missing icon frame %q", name),
		"The build is missing embedded icons; reinstall runcat")
}

// SettingsCorrupt reports a settings field that could not be decoded.
func SettingsCorrupt(field string, cause error) *Error {
	return WrapWithCode(cause, ErrSettings, fmt.Sprintf("settings field %q is corrupt", field),
		"The default value is used until the setting is changed")
}

// SignalUnreadable reports an OS signal (theme, autostart) that could not be read.
func SignalUnreadable(signal string, cause error) *Error {
	return WrapWithCode(cause, ErrSignal, fmt.Sprintf("%s signal unreadable", signal), "")
}

// Error implements the error interface as "message: cause".
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsCode checks if err is (or wraps) an Error with the given code.
func IsCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var rcErr *Error
	if errors.As(err, &rcErr) {
		return rcErr.Code == code
	}
	return false
}

// Join combines errors, dropping nils. It returns nil when all are nil.
func Join(errs ...error) error {
	return errors.Join(errs...)
}
