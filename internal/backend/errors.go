package backend

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// ErrorKind tells apart the ways a backend call can fail
type ErrorKind string

const (
	// KindTransport the request never produced an HTTP response
	KindTransport ErrorKind = "transport"
	// KindHTTP the backend answered with a non-2xx status
	KindHTTP ErrorKind = "http"
	// KindEnvelope the backend answered 2xx with the error flag set
	KindEnvelope ErrorKind = "envelope"
)

// APIError describes a failed backend call
type APIError struct {
	Kind    ErrorKind
	Method  string
	Path    string
	Status  int
	Message string
}

func (e *APIError) Error() string {
	switch e.Kind {
	case KindTransport:
		return fmt.Sprintf("backend %s %s: %s", e.Method, e.Path, e.Message)
	default:
		return fmt.Sprintf("backend %s %s: status %d: %s", e.Method, e.Path, e.Status, e.Message)
	}
}

// AsAPIError extracts the APIError from a wrapped error
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsNotFound reports whether the backend answered 404
func IsNotFound(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.Status == http.StatusNotFound
}

// IsRejected reports whether the backend flagged the request as failed in a 2xx envelope
func IsRejected(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.Kind == KindEnvelope
}
