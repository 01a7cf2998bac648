package api

import "fmt"

// StatusError is a non-2xx response. It is never retried
// automatically; callers surface it to the user and let them retry.
type StatusError struct {
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("response failed with status %d", e.Status)
}
