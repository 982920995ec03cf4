package api

import (
	"fmt"
)

// ErrorKind buckets a failed call for display purposes.
type ErrorKind string

const (
	// ErrNetwork: no response reached the client at all.
	ErrNetwork ErrorKind = "network"
	// ErrServer: the server answered 5xx.
	ErrServer ErrorKind = "server"
	// ErrValidation: 4xx with a structured business-rule message.
	ErrValidation ErrorKind = "validation"
	// ErrAuth: 401, session has been cleared as a side effect.
	ErrAuth ErrorKind = "auth"
)

// APIError is the transport error augmented with whatever structured
// message the server returned.
type APIError struct {
	Kind    ErrorKind
	Status  int
	Message string
	Fields  map[string]string
	Err     error
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s error (status %d)", e.Kind, e.Status)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is an *APIError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Kind == kind
}
