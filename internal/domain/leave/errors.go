package leave

import (
	"errors"
	"fmt"
)

var (
	ErrLeaveTypeNotFound    = errors.New("leave type not found")
	ErrLeaveTypeInactive    = errors.New("leave type is inactive")
	ErrLeaveRequestNotFound = errors.New("leave request not found")

	// ErrInvalidRange is returned by the working-day calculator when the
	// end date precedes the start date.
	ErrInvalidRange = errors.New("invalid range: end date before start date")

	// Validation errors, in check order.
	ErrInvalidDateRange       = errors.New("end date must not precede start date")
	ErrMissingJustification   = errors.New("justification attachment is required for this leave type")
	ErrInsufficientNotice     = errors.New("insufficient notice before leave start")
	ErrInsufficientBalance    = errors.New("insufficient leave balance")
	ErrExceedsMaxDuration     = errors.New("request exceeds the maximum duration for this leave type")
	ErrMissingRejectionReason = errors.New("rejection reason is required")

	// ErrStaleState is returned when a concurrent transition won the race
	// out of pending; the request must be reloaded.
	ErrStaleState = errors.New("request status changed concurrently")

	// Boundary errors.
	ErrNotRequester        = errors.New("only the requester may cancel a pending request")
	ErrNotEligibleApprover = errors.New("actor is not an eligible approver for this request")
)

// InsufficientNoticeError carries the exact day counts so the caller can
// render a precise message.
type InsufficientNoticeError struct {
	RequiredDays int
	ActualDays   int
}

func (e *InsufficientNoticeError) Error() string {
	return fmt.Sprintf("insufficient notice: %d days required, %d given", e.RequiredDays, e.ActualDays)
}

func (e *InsufficientNoticeError) Unwrap() error {
	return ErrInsufficientNotice
}

// InsufficientBalanceError reports requested versus remaining working days.
type InsufficientBalanceError struct {
	RequestedDays int
	RemainingDays int
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: %d days requested, %d remaining", e.RequestedDays, e.RemainingDays)
}

func (e *InsufficientBalanceError) Unwrap() error {
	return ErrInsufficientBalance
}

// ExceedsMaxDurationError reports requested days against the type's cap.
type ExceedsMaxDurationError struct {
	RequestedDays int
	MaxDays       int
}

func (e *ExceedsMaxDurationError) Error() string {
	return fmt.Sprintf("request of %d days exceeds maximum of %d", e.RequestedDays, e.MaxDays)
}

func (e *ExceedsMaxDurationError) Unwrap() error {
	return ErrExceedsMaxDuration
}
