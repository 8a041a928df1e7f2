package github

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed search
type ErrorKind int

const (
	// RateLimited is an HTTP 403; recoverable by waiting
	RateLimited ErrorKind = iota + 1
	// HTTPError is any other non-2xx status
	HTTPError
	// NetworkError is a transport or decoding failure
	NetworkError
)

func (k ErrorKind) String() string {
	switch k {
	case RateLimited:
		return "rate_limited"
	case HTTPError:
		return "http_error"
	case NetworkError:
		return "network_error"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// SearchError is the classified failure of a search call.
// Message is the user-facing text and is returned verbatim by Error.
type SearchError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	Err        error
}

func (e *SearchError) Error() string {
	return e.Message
}

func (e *SearchError) Unwrap() error {
	return e.Err
}

// KindOf extracts the classification of err, if it has one
func KindOf(err error) (ErrorKind, bool) {
	var se *SearchError
	if errors.As(err, &se) {
		return se.Kind, true
	}
	return 0, false
}

func networkError(err error) *SearchError {
	return &SearchError{Kind: NetworkError, Message: err.Error(), Err: err}
}
