package hwerr

import (
	"errors"
	"fmt"
)

// Error kinds reported by hardware and OS queries
var (
	ErrUnsupportedCapability = errors.New("unsupported capability")
	ErrQueryUnavailable      = errors.New("query unavailable")
	ErrMalformedOutput       = errors.New("malformed output")
)

// QueryError describes a failed query together with its kind
type QueryError struct {
	Op   string
	Kind error
	Err  error
}

func (e *QueryError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Op, e.Kind, e.Err)
}

// Unwrap exposes both the kind sentinel and the underlying cause to errors.Is
func (e *QueryError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Unsupported reports that the host does not provide the primitive behind op
func Unsupported(op string, err error) error {
	return &QueryError{Op: op, Kind: ErrUnsupportedCapability, Err: err}
}

// Unavailable reports that the primitive exists but this particular read failed
func Unavailable(op string, err error) error {
	return &QueryError{Op: op, Kind: ErrQueryUnavailable, Err: err}
}

// Malformed reports a decoded value outside its expected range
func Malformed(op string, err error) error {
	return &QueryError{Op: op, Kind: ErrMalformedOutput, Err: err}
}

// KindOf returns a short label for the kind of err
func KindOf(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnsupportedCapability):
		return "unsupported"
	case errors.Is(err, ErrQueryUnavailable):
		return "unavailable"
	case errors.Is(err, ErrMalformedOutput):
		return "malformed"
	default:
		return "error"
	}
}
