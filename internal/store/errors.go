package store

import "fmt"

// ErrNotFound indicates a referenced entity does not exist. It propagates
// to the caller as a typed error; the API layer decides the status code.
type ErrNotFound struct {
	Kind string
	ID   string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}
