package leave

import (
	"time"
)

// LeaveKind is the closed set of leave categories.
type LeaveKind string

const (
	KindAnnual      LeaveKind = "annual"
	KindSick        LeaveKind = "sick"
	KindMaternity   LeaveKind = "maternity"
	KindPaternity   LeaveKind = "paternity"
	KindTraining    LeaveKind = "training"
	KindUnpaid      LeaveKind = "unpaid"
	KindBereavement LeaveKind = "bereavement"
	KindExceptional LeaveKind = "exceptional"
)

func AllLeaveKinds() []LeaveKind {
	return []LeaveKind{
		KindAnnual, KindSick, KindMaternity, KindPaternity,
		KindTraining, KindUnpaid, KindBereavement, KindExceptional,
	}
}

// ApproverRole names who decides requests of a given leave type.
type ApproverRole string

const (
	ApproverManager      ApproverRole = "manager"
	ApproverSecretary    ApproverRole = "secretary"
	ApproverHR           ApproverRole = "hr"
	ApproverDeptChief    ApproverRole = "dept_chief"
	ApproverServiceChief ApproverRole = "service_chief"
	ApproverDirector     ApproverRole = "director"
)

func AllApproverRoles() []ApproverRole {
	return []ApproverRole{
		ApproverManager, ApproverSecretary, ApproverHR,
		ApproverDeptChief, ApproverServiceChief, ApproverDirector,
	}
}

// LeaveType entity
type LeaveType struct {
	ID                    string
	Kind                  LeaveKind
	Name                  string
	Description           *string
	RequiresJustification bool
	// MaxDurationDays caps the working days of a single request when set.
	MaxDurationDays *int
	ApproverRole    ApproverRole
	// NoticeDays is the minimum gap between submission and leave start,
	// waived for urgent and critical priority.
	NoticeDays int
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Priority string

const (
	PriorityNormal   Priority = "normal"
	PriorityUrgent   Priority = "urgent"
	PriorityCritical Priority = "critical"
)

// BypassesNotice reports whether the priority waives the notice-period check.
func (p Priority) BypassesNotice() bool {
	return p == PriorityUrgent || p == PriorityCritical
}

type RequestStatus string

const (
	StatusPending   RequestStatus = "pending"
	StatusApproved  RequestStatus = "approved"
	StatusRejected  RequestStatus = "rejected"
	StatusCancelled RequestStatus = "cancelled"
)

// IsTerminal reports whether no further transition is permitted.
func (s RequestStatus) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected || s == StatusCancelled
}

// LeaveRequest entity. Start and end dates are inclusive calendar days.
type LeaveRequest struct {
	ID          string
	EmployeeID  string
	LeaveTypeID string

	StartDate time.Time
	EndDate   time.Time

	// WorkingDays is computed once at submission (weekends and public
	// holidays excluded) and stored with the request.
	WorkingDays int

	Reason        string
	AttachmentURL *string
	Priority      Priority

	Status RequestStatus

	// Decision fields; ApproverID and DecidedAt are set by the single
	// terminal transition. RejectionReason is non-empty iff rejected.
	ApproverID      *string
	DecidedAt       *time.Time
	RejectionReason *string

	// Optional handover to a colleague while away.
	ReplacementID           *string
	ReplacementInstructions *string

	SubmittedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields for responses
	LeaveTypeName *string
	EmployeeName  *string
}

// HistoryAction labels an audit log entry.
type HistoryAction string

const (
	ActionSubmitted HistoryAction = "submitted"
	ActionApproved  HistoryAction = "approved"
	ActionRejected  HistoryAction = "rejected"
	ActionCancelled HistoryAction = "cancelled"
)

// HistoryEntry is one line of the append-only audit log for a request.
type HistoryEntry struct {
	ID         string
	RequestID  string
	ActorID    string
	Action     HistoryAction
	FromStatus RequestStatus
	ToStatus   RequestStatus
	Comment    string
	CreatedAt  time.Time
}
