package nucleus

import (
	"fmt"
)

type (
	// RemoteError is returned by the transport when Nucleus answers with a non-2xx status.
	// Body is the provider's error payload, left uninterpreted.
	RemoteError struct {
		StatusCode int
		Body       []byte
	}

	// ProgrammingError means the client was asked for something its endpoint table cannot express.
	// It never depends on user input that passed validation.
	ProgrammingError struct {
		Operation Operation
		Reason    string
	}
)

func (e *RemoteError) Error() string {
	return fmt.Sprintf("nucleus returned HTTP %d: %s", e.StatusCode, string(e.Body))
}

func (e *ProgrammingError) Error() string {
	return fmt.Sprintf("nucleus %s: %s", e.Operation, e.Reason)
}

func programmingError(op Operation, format string, args ...interface{}) error {
	return &ProgrammingError{Operation: op, Reason: fmt.Sprintf(format, args...)}
}
