package availability

import (
	"errors"
	"fmt"
)

// Error codes returned by the availability engine. The HTTP layer maps these
// to status codes; the engine itself never deals in HTTP terms.
const (
	CodePastDate               = "pastDate"
	CodeEmptyServices          = "emptyServices"
	CodeUnknownService         = "unknownService"
	CodeInvalidServiceDuration = "invalidServiceDuration"
	CodeNoOperatingHours       = "noOperatingHours"
	CodeNoStaffForCapability   = "noStaffForCapability"
	CodeInternal               = "internal"
)

// AvailabilityError is the single error type the engine surfaces to callers.
type AvailabilityError struct {
	Code    string
	Message string
}

func (e *AvailabilityError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewAvailabilityError(code, msg string) error {
	return &AvailabilityError{
		Code:    code,
		Message: msg,
	}
}

// ErrorCode extracts the engine error code, treating anything that is not an
// AvailabilityError as internal.
func ErrorCode(err error) string {
	var ae *AvailabilityError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return CodeInternal
}

// TimeParseError reports a time-of-day string that matches neither accepted
// layout. It is deliberately distinct from AvailabilityError: a bad stored
// time is a data-quality anomaly handled row by row, never a request failure.
type TimeParseError struct {
	Value string
}

func (e *TimeParseError) Error() string {
	return fmt.Sprintf("invalid time of day %q (want HH:MM or HH:MM:SS)", e.Value)
}
