package api

import (
	"errors"
	"fmt"
)

var (
	// ErrNetwork wraps transport failures where no HTTP response arrived.
	ErrNetwork = errors.New("network failure")

	// ErrTimeout marks requests that exceeded the client timeout.
	ErrTimeout = errors.New("request timed out")

	// ErrMalformed marks 2xx responses missing expected fields or that
	// could not be decoded at all.
	ErrMalformed = errors.New("malformed response")
)

// RequestError is returned when the server responded with a non-2xx status.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed with status %d", e.Status)
	}
	return fmt.Sprintf("request failed with status %d: %s", e.Status, e.Message)
}

// IsStatus reports whether err is a RequestError with the given status.
func IsStatus(err error, status int) bool {
	var reqErr *RequestError
	return errors.As(err, &reqErr) && reqErr.Status == status
}
