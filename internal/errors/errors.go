// Package errors provides structured error types for npm-registry.
package errors

import (
	"errors"
	"fmt"
)

// Error codes for npm-registry operations.
const (
	// Config errors
	CodeConfigParse        = "CONFIG_001" // Settings file could not be decoded
	CodeConfigInvalidValue = "CONFIG_002" // Invalid value in settings

	// Input errors
	CodeInputRead = "INPUT_001" // Interactive prompt could not be read

	// npm errors
	CodeNpmSpawnFailed  = "NPM_001" // npm could not be started
	CodeNpmDecodeFailed = "NPM_002" // npm output is not valid UTF-8

	// IO errors
	CodeIOReadError  = "IO_004" // Read error
	CodeIOWriteError = "IO_005" // Write error
)

// Error is the structured error type for npm-registry's fatal paths.
type Error struct {
	Code    string         // Error code (e.g., "IO_004")
	Message string         // Human-readable message
	Details map[string]any // Context (path, command, etc.)
	Cause   error          // Wrapped error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// Newf creates a new Error with formatted message.
func Newf(code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrapf wraps an error with a formatted Error.
func Wrapf(code string, err error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   err,
	}
}

// --- Config Errors ---

// ConfigParse creates an error for an undecodable settings file.
func ConfigParse(path string, err error) *Error {
	return Wrapf(CodeConfigParse, err, "parsing settings file %s", path).
		WithDetail("path", path)
}

// ConfigInvalidValue creates an error for invalid config value.
func ConfigInvalidValue(field string, value any, reason string) *Error {
	return Newf(CodeConfigInvalidValue, "invalid config value for %s: %s", field, reason).
		WithDetail("field", field).
		WithDetail("value", value).
		WithDetail("reason", reason)
}

// --- Input Errors ---

// InputRead creates an error for a prompt that could not be answered.
func InputRead(what string, err error) *Error {
	return Wrapf(CodeInputRead, err, "failed to read %s from input", what).
		WithDetail("input", what)
}

// --- npm Errors ---

// SpawnFailed creates an error for a command that could not be started.
func SpawnFailed(command string, err error) *Error {
	return Wrapf(CodeNpmSpawnFailed, err, "failed to run %s", command).
		WithDetail("command", command)
}

// DecodeFailed creates an error for command output that is not UTF-8.
func DecodeFailed(command, stream string) *Error {
	return Newf(CodeNpmDecodeFailed, "%s %s is not valid UTF-8", command, stream).
		WithDetail("command", command).
		WithDetail("stream", stream)
}

// --- IO Errors ---

// IOReadError creates an error for read failures.
func IOReadError(path string, err error) *Error {
	return Wrapf(CodeIOReadError, err, "read config file %s failed", path).
		WithDetail("path", path)
}

// IOWriteError creates an error for write failures.
func IOWriteError(path string, err error) *Error {
	return Wrapf(CodeIOWriteError, err, "write config file %s failed", path).
		WithDetail("path", path)
}

// HasCode checks if an error is an Error with the given code.
// It handles wrapped errors by unwrapping to find an Error.
func HasCode(err error, code string) bool {
	var rerr *Error
	if errors.As(err, &rerr) {
		return rerr.Code == code
	}
	return false
}

// Code returns the error code if err is an Error, empty string otherwise.
func Code(err error) string {
	var rerr *Error
	if errors.As(err, &rerr) {
		return rerr.Code
	}
	return ""
}
