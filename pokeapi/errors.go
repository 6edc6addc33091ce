package pokeapi

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound matches a NetworkError whose status is 404.
	ErrNotFound = errors.New("not found")
	// ErrShinyUnavailable is returned when no shiny artwork exists for an id.
	ErrShinyUnavailable = errors.New("shiny artwork unavailable")
)

// NetworkError is a failed transport call or a non-success response.
type NetworkError struct {
	URL        string
	StatusCode int
	Body       string
	Err        error
}

func (e *NetworkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("network error: GET %s: %v", e.URL, e.Err)
	}
	if e.Body != "" {
		return fmt.Sprintf("network error: GET %s: unexpected status code: %d, body: %s", e.URL, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("network error: GET %s: unexpected status code: %d", e.URL, e.StatusCode)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrNotFound) match 404 responses.
func (e *NetworkError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}
