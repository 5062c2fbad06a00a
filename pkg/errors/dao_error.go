package errors

import (
	"fmt"
)

// DaoError is returned by the local store accessors
type DaoError struct {
	Err           error
	Message       string
	NotFound      bool
	BadValidation bool
}

func (e *DaoError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%v: %v", e.Message, e.Err.Error())
}

func (e *DaoError) Unwrap() error {
	return e.Err
}

func (e *DaoError) Wrap(err error) {
	e.Err = err
}

func NewNotFoundError(message string) *DaoError {
	return &DaoError{Message: message, NotFound: true}
}
