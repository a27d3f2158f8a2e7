package onecall

import (
	"errors"
	"fmt"
)

// Failure classes for a One Call request. Every error returned by this
// package wraps exactly one of them.
var (
	ErrConfiguration = errors.New("configuration error")
	ErrTransport     = errors.New("transport error")
	ErrRemote        = errors.New("remote error")
	ErrPayload       = errors.New("payload error")
)

var (
	errMissingAPIKey      = fmt.Errorf("%w: no API key configured, get one at https://openweathermap.org/api/one-call-api", ErrConfiguration)
	errMissingCoordinates = fmt.Errorf("%w: latitude and/or longitude not provided", ErrConfiguration)
)

// RemoteError is returned when the provider answers with a status other than 200.
type RemoteError struct {
	StatusCode int
	StatusText string
}

// Error returns the status text sent by the provider.
func (e *RemoteError) Error() string {
	return e.StatusText
}

// Unwrap lets errors.Is match ErrRemote.
func (e *RemoteError) Unwrap() error {
	return ErrRemote
}
