package owm

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized is returned on HTTP 401
	ErrUnauthorized = errors.New("Access denied. Check your API key.")
	// ErrCityNotFound is returned on HTTP 404
	ErrCityNotFound = errors.New("Can't find weather data for this city.")
	// ErrUnexpectedFormat is returned when the body is not the expected JSON shape
	ErrUnexpectedFormat = errors.New("Unexpected response format from the weather service.")
)

// StatusError is any other non-2xx response
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("Something went wrong... (%d)", e.Code)
}

// TransportError wraps a failure to reach the service at all
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("Can't reach the weather service: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// errorForStatus maps a non-2xx status code to its error kind
func errorForStatus(code int) error {
	switch code {
	case 401:
		return ErrUnauthorized
	case 404:
		return ErrCityNotFound
	default:
		return &StatusError{Code: code}
	}
}
