package internal

import "errors"

// error taxonomy for batch work. all four types wrap an underlying
// error and are matched with errors.As, following the same pattern
// everywhere: per-item errors never abort sibling items.

// DataUnavailableError means no price or signal data exists for the
// requested (symbol, date). the item is skipped, not failed.
type DataUnavailableError struct {
	Err error
}

func (e DataUnavailableError) Error() string {
	return e.Err.Error()
}

func (e DataUnavailableError) Unwrap() error {
	return e.Err
}

// NotYetMaturedError means a validation horizon's target date has no
// price yet. the item is skipped and picked up by a later pass.
type NotYetMaturedError struct {
	Err error
}

func (e NotYetMaturedError) Error() string {
	return e.Err.Error()
}

func (e NotYetMaturedError) Unwrap() error {
	return e.Err
}

// ConfigurationError means weights or thresholds are invalid. checked
// eagerly, before any batch work starts - always fatal.
type ConfigurationError struct {
	Err error
}

func (e ConfigurationError) Error() string {
	return e.Err.Error()
}

func (e ConfigurationError) Unwrap() error {
	return e.Err
}

// ComputationError marks a degenerate per-item calculation, like a
// zero price at generation. recorded in the batch report.
type ComputationError struct {
	Err error
}

func (e ComputationError) Error() string {
	return e.Err.Error()
}

func (e ComputationError) Unwrap() error {
	return e.Err
}

// IsDomainError reports whether err is one of the typed errors above.
// anything else is treated as potentially transient and retryable.
func IsDomainError(err error) bool {
	return errors.As(err, &DataUnavailableError{}) ||
		errors.As(err, &NotYetMaturedError{}) ||
		errors.As(err, &ConfigurationError{}) ||
		errors.As(err, &ComputationError{})
}
