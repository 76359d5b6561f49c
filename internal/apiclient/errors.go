package apiclient

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUnsuccessful is returned when the upstream answers 2xx but reports
// success=false in its JSON envelope.
var ErrUnsuccessful = errors.New("upstream reported failure")

// HTTPError is a non-2xx upstream response.
type HTTPError struct {
	Method string
	URL    string
	Status int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d (%s %s)", e.Status, e.Method, e.URL)
}

// NotFound reports whether the upstream answered 404.
func (e *HTTPError) NotFound() bool { return e.Status == http.StatusNotFound }

// NetworkError is a request that never produced a response. The transport
// error is kept as-is and reachable through errors.Is / errors.As.
type NetworkError struct {
	Method string
	URL    string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// IsHTTPStatus reports whether err is an HTTPError with the given status.
func IsHTTPStatus(err error, status int) bool {
	var he *HTTPError
	return errors.As(err, &he) && he.Status == status
}
