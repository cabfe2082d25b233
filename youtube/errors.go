package youtube

import (
	"errors"
	"fmt"

	"google.golang.org/api/googleapi"
)

// Sentinel errors for channel and video operations.
var (
	// ErrChannelNotFound indicates a well-formed channel ID that the
	// platform does not know about.
	ErrChannelNotFound = errors.New("youtube: channel not found")

	// ErrStopEnumeration can be returned from an enumeration callback to
	// stop early without reporting an error.
	ErrStopEnumeration = errors.New("youtube: stop enumeration")
)

// APIError is an error reported by the platform itself: the request reached
// the Data API and the API rejected it (bad key, quota exceeded, invalid
// parameter). It carries the upstream-provided message verbatim.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("youtube: api error %d: %s", e.Code, e.Message)
}

// TransportError is an error below the API: the call never completed or the
// response could not be decoded.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("youtube: transport: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// wrapCallError sorts a raw client error into the APIError/TransportError
// taxonomy. Platform-reported errors arrive as *googleapi.Error; everything
// else (DNS, TLS, timeouts, malformed response bodies) is transport.
func wrapCallError(err error) error {
	if err == nil {
		return nil
	}
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return &APIError{Code: gerr.Code, Message: gerr.Message}
	}
	return &TransportError{Err: err}
}
