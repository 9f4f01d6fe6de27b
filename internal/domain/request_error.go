package domain

import "fmt"

// RequestError is the failure outcome of a remote call. Status is the HTTP
// status code, or 0 when the request never completed (network unreachable,
// malformed response, timeout). Message is the server-provided error text,
// empty when the server sent none.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	if e.Status == 0 {
		if e.Message != "" {
			return fmt.Sprintf("request failed before reaching the server: %s", e.Message)
		}
		return "request failed before reaching the server"
	}
	if e.Message != "" {
		return fmt.Sprintf("request failed with status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// Transport reports whether the request failed without an HTTP status,
// meaning it was rejected before the server could evaluate authentication.
func (e *RequestError) Transport() bool {
	return e.Status == 0
}
