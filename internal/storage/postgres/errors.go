package postgres

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// QueryError is a failed statement reported by the server.
type QueryError struct {
	Op      string
	Code    string
	Message string
	Err     error
}

func (e *QueryError) Error() string {
	return e.Op + ": " + e.Message
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// wrapError tags err with the operation. Server errors keep the message and detail only.
func wrapError(op string, err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		msg := pqErr.Message
		if pqErr.Detail != "" {
			msg += " (" + pqErr.Detail + ")"
		}
		return &QueryError{Op: op, Code: string(pqErr.Code), Message: msg, Err: err}
	}

	return fmt.Errorf("%s: %w", op, err)
}
