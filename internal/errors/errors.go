package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when a referenced record is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// DuplicateRecordError represents a write-once violation: a row for the key
// already exists and the insert was rejected without touching the stored data.
type DuplicateRecordError struct {
	Entity string
	Key    string
}

func (e *DuplicateRecordError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%s already recorded for %s", e.Entity, e.Key)
	}
	return fmt.Sprintf("%s already recorded", e.Entity)
}

// Is enables errors.Is() comparison for DuplicateRecordError
func (e *DuplicateRecordError) Is(target error) bool {
	t, ok := target.(*DuplicateRecordError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ExternalUnavailableError represents a network or API failure on one of the
// external collaborators; the record stays pending and the next poll retries it.
type ExternalUnavailableError struct {
	Service string
	Cause   error
}

func (e *ExternalUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s unavailable: %v", e.Service, e.Cause)
	}
	return fmt.Sprintf("%s unavailable", e.Service)
}

func (e *ExternalUnavailableError) Unwrap() error {
	return e.Cause
}

// Is enables errors.Is() comparison for ExternalUnavailableError
func (e *ExternalUnavailableError) Is(target error) bool {
	t, ok := target.(*ExternalUnavailableError)
	if !ok {
		return false
	}
	return t.Service == "" || e.Service == t.Service
}

// MalformedResponseError represents an external response of unexpected shape.
// Treated as transient: logged at debug level, record left pending.
type MalformedResponseError struct {
	Service string
	Detail  string
}

func (e *MalformedResponseError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("malformed %s response: %s", e.Service, e.Detail)
	}
	return fmt.Sprintf("malformed %s response", e.Service)
}

// Is enables errors.Is() comparison for MalformedResponseError
func (e *MalformedResponseError) Is(target error) bool {
	t, ok := target.(*MalformedResponseError)
	if !ok {
		return false
	}
	return t.Service == "" || e.Service == t.Service
}

// Entity Not Found Errors
var (
	ErrCallNotFound       = &NotFoundError{Entity: "call"}
	ErrUserNotFound       = &NotFoundError{Entity: "portal user"}
	ErrTranscriptNotFound = &NotFoundError{Entity: "transcript"}
	ErrAnalysisNotFound   = &NotFoundError{Entity: "call analysis"}
)

// Write-Once Violation Errors
var (
	ErrCallExists       = &DuplicateRecordError{Entity: "call"}
	ErrTranscriptExists = &DuplicateRecordError{Entity: "transcript"}
	ErrEvaluationExists = &DuplicateRecordError{Entity: "evaluation"}
	ErrCommentaryExists = &DuplicateRecordError{Entity: "commentary"}
)

// Pipeline Errors
var (
	// ErrInvalidStage signals an attempt to advance a status column outside
	// {transcribe, analysis, send}. Unreachable in steady state.
	ErrInvalidStage = errors.New("invalid pipeline stage")

	// ErrScoringExhausted signals that the scoring retry policy ran out of
	// time without a usable answer; the record stays pending.
	ErrScoringExhausted = errors.New("scoring retries exhausted")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsDuplicate checks if an error is a DuplicateRecordError
func IsDuplicate(err error) bool {
	var dupErr *DuplicateRecordError
	return errors.As(err, &dupErr)
}

// IsExternalUnavailable checks if an error is an ExternalUnavailableError
func IsExternalUnavailable(err error) bool {
	var extErr *ExternalUnavailableError
	return errors.As(err, &extErr)
}

// IsMalformed checks if an error is a MalformedResponseError
func IsMalformed(err error) bool {
	var malErr *MalformedResponseError
	return errors.As(err, &malErr)
}
