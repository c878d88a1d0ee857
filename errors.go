package ichor

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// APIError is returned when the server answers with a non-2xx
// status code. The body of such responses is never inspected.
type APIError struct {
	StatusCode int    `json:"statusCode"`
	Status     string `json:"status"`
	// Endpoint is the path after the API key, e.g. "/game/123"
	Endpoint string `json:"endpoint"`
}

var _ error = (*APIError)(nil)

func (ae *APIError) Error() string {
	status := ae.Status
	if status == "" {
		status = fmt.Sprintf("%d %s", ae.StatusCode, http.StatusText(ae.StatusCode))
	}
	return fmt.Sprintf("itch.io API error: HTTP %s for %s", status, ae.Endpoint)
}

// DecodeError is returned when a response body doesn't have
// the shape of the model it's decoded into.
type DecodeError struct {
	Endpoint string
	Err      error
}

var _ error = (*DecodeError)(nil)

func (de *DecodeError) Error() string {
	return fmt.Sprintf("decoding response for %s: %s", de.Endpoint, de.Err.Error())
}

func (de *DecodeError) Unwrap() error {
	return de.Err
}

// IsAPIError returns true if an error is an itch.io API error,
// even if it's wrapped with github.com/pkg/errors
func IsAPIError(err error) bool {
	_, ok := AsAPIError(err)
	return ok
}

// AsAPIError returns an *APIError and true if the
// passed error (no matter how deeply wrapped it is)
// is an *APIError. Otherwise it returns nil, false.
func AsAPIError(err error) (*APIError, bool) {
	if apiError, ok := errors.Cause(err).(*APIError); ok {
		return apiError, true
	}
	var apiError *APIError
	if errors.As(err, &apiError) {
		return apiError, true
	}
	return nil, false
}

// IsDecodeError returns true if the response body of a call
// didn't match the expected model.
func IsDecodeError(err error) bool {
	_, ok := AsDecodeError(err)
	return ok
}

// AsDecodeError is like AsAPIError, for *DecodeError
func AsDecodeError(err error) (*DecodeError, bool) {
	if decodeError, ok := errors.Cause(err).(*DecodeError); ok {
		return decodeError, true
	}
	var decodeError *DecodeError
	if errors.As(err, &decodeError) {
		return decodeError, true
	}
	return nil, false
}

// IsNotFound returns true for HTTP 404 API errors
func IsNotFound(err error) bool {
	if ae, ok := AsAPIError(err); ok {
		return ae.StatusCode == http.StatusNotFound
	}
	return false
}
