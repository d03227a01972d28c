package simplesort

import (
	"errors"
	"fmt"
)

// ErrNotNumeric is the cause of the ComparisonError raised when the default
// comparator is applied to elements it cannot subtract.
var ErrNotNumeric = errors.New("simplesort: default comparator requires numeric elements")

// ComparisonError represents an error that occurred during item comparison
type ComparisonError struct {
	// Cause is the original panic or error that occurred during comparison
	Cause interface{}
	// Context provides additional information about when the comparison failed
	Context string
}

func (e *ComparisonError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("comparison panic in %s: %v", e.Context, e.Cause)
	}
	return fmt.Sprintf("comparison panic: %v", e.Cause)
}

func (e *ComparisonError) Unwrap() error {
	if err, ok := e.Cause.(error); ok {
		return err
	}
	return nil
}

// NewComparisonError creates a ComparisonError.
// A cause that already is a ComparisonError is returned as is, with its context
// filled in when it had none.
func NewComparisonError(cause interface{}, context string) error {
	var ce *ComparisonError
	if err, ok := cause.(error); ok && errors.As(err, &ce) {
		if ce.Context == "" {
			ce.Context = context
		}
		return ce
	}
	return &ComparisonError{Cause: cause, Context: context}
}

// ConfigError represents an error in configuration parameters
type ConfigError struct {
	// Field is the name of the configuration field that's invalid
	Field string
	// Value is the invalid value provided
	Value interface{}
	// Reason explains why the value is invalid
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error in field %s (value: %v): %s", e.Field, e.Value, e.Reason)
}
