package errors

import (
	"errors"
	"fmt"
)

// InvalidSeriesError represents a structural problem in an input price series
// (empty series, unordered or duplicate dates, non-positive prices). Analysis
// aborts before any indicator is computed when this error is returned.
type InvalidSeriesError struct {
	Code    ErrorCode // One of the series error codes (200-299)
	Index   int       // Index of the offending point, -1 when not point-specific
	Message string    // Human-readable message
}

// NewInvalidSeriesError creates a new InvalidSeriesError.
func NewInvalidSeriesError(code ErrorCode, index int, message string) *InvalidSeriesError {
	return &InvalidSeriesError{
		Code:    code,
		Index:   index,
		Message: message,
	}
}

// NewInvalidSeriesErrorf creates a new InvalidSeriesError with a formatted message.
func NewInvalidSeriesErrorf(code ErrorCode, index int, format string, args ...any) *InvalidSeriesError {
	return &InvalidSeriesError{
		Code:    code,
		Index:   index,
		Message: fmt.Sprintf(format, args...),
	}
}

// Error implements the error interface.
func (e *InvalidSeriesError) Error() string {
	return e.Message
}

// IsInvalidSeriesError checks if an error is an InvalidSeriesError.
// It uses errors.As to check the error chain.
func IsInvalidSeriesError(err error) bool {
	var invalidErr *InvalidSeriesError

	return errors.As(err, &invalidErr)
}

// InsufficientDataError represents an error when there is no data at all for
// a calculation. Short-but-nonzero series never produce this error; they
// degrade to undefined indicator values instead.
type InsufficientDataError struct {
	Required int    // Minimum data points required
	Actual   int    // Actual data points available
	Ticker   string // Optional: ticker context
	Message  string // Human-readable message
}

// NewInsufficientDataError creates a new InsufficientDataError.
func NewInsufficientDataError(required, actual int, ticker, message string) *InsufficientDataError {
	return &InsufficientDataError{
		Required: required,
		Actual:   actual,
		Ticker:   ticker,
		Message:  message,
	}
}

// NewInsufficientDataErrorf creates a new InsufficientDataError with a formatted message.
func NewInsufficientDataErrorf(required, actual int, ticker, format string, args ...any) *InsufficientDataError {
	return &InsufficientDataError{
		Required: required,
		Actual:   actual,
		Ticker:   ticker,
		Message:  fmt.Sprintf(format, args...),
	}
}

// Error implements the error interface.
func (e *InsufficientDataError) Error() string {
	return e.Message
}

// IsInsufficientDataError checks if an error is an InsufficientDataError.
// It uses errors.As to check the error chain.
func IsInsufficientDataError(err error) bool {
	var insufficientErr *InsufficientDataError

	return errors.As(err, &insufficientErr)
}
