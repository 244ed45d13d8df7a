package registration

import (
	"errors"
	"fmt"
	"strings"

	"emppayroll/internal/domain/employee"
)

// FailureNotice is shown when the backend rejects a submission.
const FailureNotice = "Error adding employee. Please try again."

var (
	ErrUnknownField       = errors.New("unknown form field")
	ErrInvalidKind        = errors.New("field does not accept this kind of change")
	ErrUnknownValue       = errors.New("value is outside the field's options")
	ErrSubmissionInFlight = errors.New("submission already in progress")
	ErrNotConfirming      = errors.New("confirmation is not pending")
	ErrUnmounted          = errors.New("form is no longer mounted")
	ErrClosed             = errors.New("form already submitted")
)

// ValidationError is returned when the final submit attempt finds missing or
// malformed fields. No request reaches the backend.
type ValidationError struct {
	Issues []employee.Issue
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, issue.Field+" "+issue.Reason)
	}
	return "validation rejected: " + strings.Join(parts, "; ")
}

// SubmissionFailedError wraps any backend rejection: network, server or timeout.
type SubmissionFailedError struct {
	IsEdit bool
	Err    error
}

func (e *SubmissionFailedError) Error() string {
	op := "create"
	if e.IsEdit {
		op = "update"
	}
	return fmt.Sprintf("submission failed (%s): %v", op, e.Err)
}

func (e *SubmissionFailedError) Unwrap() error {
	return e.Err
}
