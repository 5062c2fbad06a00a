package registry_client

import (
	"errors"
	"fmt"
	"net/http"
)

// RegistryError describes a failed call to the remote registry
type RegistryError struct {
	Op         string
	StatusCode int
	Message    string
	Retryable  bool
	Err        error
}

func (e *RegistryError) Error() string {
	msg := fmt.Sprintf("registry %s failed", e.Op)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s with status %d", msg, e.StatusCode)
	}
	if e.Message != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Message)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *RegistryError) Unwrap() error {
	return e.Err
}

// IsRetryable reports whether err is a transient registry failure
func IsRetryable(err error) bool {
	var regErr *RegistryError
	if errors.As(err, &regErr) {
		return regErr.Retryable
	}
	return false
}

func newTransportError(op string, err error) *RegistryError {
	return &RegistryError{Op: op, Retryable: true, Err: err}
}

func newStatusError(op string, statusCode int, body []byte) *RegistryError {
	return &RegistryError{
		Op:         op,
		StatusCode: statusCode,
		Message:    string(body),
		Retryable:  statusCode >= http.StatusInternalServerError || statusCode == http.StatusTooManyRequests,
	}
}
