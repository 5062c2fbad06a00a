package errors

import (
	"errors"
	"fmt"
)

type SyncErrorKind string

const (
	// RemoteUnavailable: the registry snapshot could not be fetched, fatal to a run
	RemoteUnavailable SyncErrorKind = "RemoteUnavailable"
	// LocalStoreError: reading or writing the local store failed
	LocalStoreError SyncErrorKind = "LocalStoreError"
	// ValidationError: a malformed domain was supplied at creation time
	ValidationError SyncErrorKind = "ValidationError"
	// AuditLogError: recording a run failed, never fatal
	AuditLogError SyncErrorKind = "AuditLogError"
	// SyncInProgress: another run holds the owner's lock
	SyncInProgress SyncErrorKind = "SyncInProgress"
)

// SyncError classifies failures of the reconciliation engine and the domain flows around it
type SyncError struct {
	Kind    SyncErrorKind
	Message string
	Err     error
}

func (e *SyncError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	if e.Message == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v: %v", e.Message, e.Err.Error())
}

func (e *SyncError) Unwrap() error {
	return e.Err
}

func NewSyncError(kind SyncErrorKind, message string, err error) *SyncError {
	return &SyncError{Kind: kind, Message: message, Err: err}
}

// IsSyncErrorKind reports whether any error in err's chain is a SyncError of the given kind
func IsSyncErrorKind(err error, kind SyncErrorKind) bool {
	var syncErr *SyncError
	if errors.As(err, &syncErr) {
		return syncErr.Kind == kind
	}
	return false
}
