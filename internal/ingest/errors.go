package ingest

import (
	"errors"
	"fmt"
)

// ErrMissingFields indicates the request lacked a document id or command name.
var ErrMissingFields = errors.New("uuid and command are required")

// UnknownCommandError reports a command name outside the known set.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("Unknown command: %s", e.Name)
}

// IsClientError reports whether err is a request validation failure rather
// than a storage failure.
func IsClientError(err error) bool {
	if errors.Is(err, ErrMissingFields) {
		return true
	}
	var unknown *UnknownCommandError
	return errors.As(err, &unknown)
}
