package leave

import (
	"context"
	"time"
)

type LeaveTypeRepository interface {
	Create(ctx context.Context, lt LeaveType) (LeaveType, error)
	GetByID(ctx context.Context, id string) (LeaveType, error)
	ListActive(ctx context.Context) ([]LeaveType, error)
	List(ctx context.Context) ([]LeaveType, error)
	Update(ctx context.Context, req UpdateLeaveTypeRequest) error
}

// StatusUpdate carries the decision fields written alongside a conditional
// status transition.
type StatusUpdate struct {
	To              RequestStatus
	ApproverID      *string
	DecidedAt       *time.Time
	RejectionReason *string
}

type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	List(ctx context.Context, filter RequestFilter) ([]LeaveRequest, int64, error)
	ListByEmployee(ctx context.Context, employeeID string, filter RequestFilter) ([]LeaveRequest, int64, error)
	// ListApprovedByEmployeeAndYear returns the approved requests whose
	// start date falls in the given year, for balance accounting.
	ListApprovedByEmployeeAndYear(ctx context.Context, employeeID string, year int) ([]LeaveRequest, error)
	// ListPendingOlderThan returns requests still pending that were
	// submitted at or before the cutoff, for approval reminders.
	ListPendingOlderThan(ctx context.Context, cutoff time.Time) ([]LeaveRequest, error)
	// UpdateStatusIf atomically transitions the request out of `from`.
	// It returns ErrStaleState when the request is no longer in `from`;
	// exactly one of two racing transitions can succeed.
	UpdateStatusIf(ctx context.Context, id string, from RequestStatus, upd StatusUpdate) error
}

type HistoryRepository interface {
	Append(ctx context.Context, entry HistoryEntry) (HistoryEntry, error)
	ListByRequest(ctx context.Context, requestID string) ([]HistoryEntry, error)
}
