package services

import (
	"errors"
	"strings"
)

// Sentinel markers for failure classification. Every asynchronous call in the
// client converts its failure into one of these categories before the status
// line renders it; none of them is fatal.
var (
	ErrTransport         = errors.New("transport error")
	ErrMalformedResponse = errors.New("malformed response")
	ErrPrecondition      = errors.New("precondition not met")
	ErrNotFound          = errors.New("not found")
	ErrUnrecognized      = errors.New("unrecognized command")
	ErrUnsupported       = errors.New("capability unavailable")
)

// ServiceError tags a failure with a sentinel marker and enough context to
// log it, while keeping the user-facing message separable from the chain.
type ServiceError struct {
	Marker    error
	Component string
	Operation string
	Detail    string
	Err       error
}

func (e *ServiceError) Error() string {
	msg := e.Marker.Error() + ": " + e.detail()
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ServiceError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Marker, e.Err}
	}
	return []error{e.Marker}
}

func (e *ServiceError) detail() string {
	parts := make([]string, 0, 3)
	for _, part := range []string{e.Component, e.Operation, e.Detail} {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}

// Wrap builds a ServiceError tagged with the provided marker. The marker
// should be one of the exported sentinel errors above; nil defaults to
// ErrTransport.
func Wrap(marker error, component, operation, message string, err error) error {
	if marker == nil {
		marker = ErrTransport
	}
	return &ServiceError{
		Marker:    marker,
		Component: component,
		Operation: operation,
		Detail:    message,
		Err:       err,
	}
}

// Message extracts the user-facing portion of a failure: the detail of the
// innermost ServiceError, or the whole error string when the failure was
// never wrapped.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		if detail := strings.TrimSpace(svcErr.Detail); detail != "" {
			return detail
		}
		if svcErr.Err != nil {
			return svcErr.Err.Error()
		}
		return svcErr.detail()
	}
	return err.Error()
}
