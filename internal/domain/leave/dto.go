package leave

import (
	"time"

	"github.com/ikaze-hr/leave-backend-go/internal/pkg/validator"
)

type CreateLeaveTypeRequest struct {
	Kind                  string  `json:"kind"`
	Name                  string  `json:"name"`
	Description           *string `json:"description"`
	RequiresJustification bool    `json:"requires_justification"`
	MaxDurationDays       *int    `json:"max_duration_days"`
	ApproverRole          string  `json:"approver_role"`
	NoticeDays            int     `json:"notice_days"`
}

func (r CreateLeaveTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	kinds := make([]string, 0, len(AllLeaveKinds()))
	for _, k := range AllLeaveKinds() {
		kinds = append(kinds, string(k))
	}
	if !validator.IsInSlice(r.Kind, kinds) {
		errs = append(errs, validator.ValidationError{Field: "kind", Message: "Unknown leave kind"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "Name is required"})
	}
	roles := make([]string, 0, len(AllApproverRoles()))
	for _, role := range AllApproverRoles() {
		roles = append(roles, string(role))
	}
	if !validator.IsInSlice(r.ApproverRole, roles) {
		errs = append(errs, validator.ValidationError{Field: "approver_role", Message: "Unknown approver role"})
	}
	if r.NoticeDays < 0 {
		errs = append(errs, validator.ValidationError{Field: "notice_days", Message: "Notice days cannot be negative"})
	}
	if r.MaxDurationDays != nil && *r.MaxDurationDays < 1 {
		errs = append(errs, validator.ValidationError{Field: "max_duration_days", Message: "Maximum duration must be at least 1 day"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateLeaveTypeRequest struct {
	ID                    string  `json:"-"`
	Name                  *string `json:"name"`
	Description           *string `json:"description"`
	RequiresJustification *bool   `json:"requires_justification"`
	MaxDurationDays       *int    `json:"max_duration_days"`
	ApproverRole          *string `json:"approver_role"`
	NoticeDays            *int    `json:"notice_days"`
	Active                *bool   `json:"active"`
}

type LeaveTypeResponse struct {
	ID                    string       `json:"id"`
	Kind                  LeaveKind    `json:"kind"`
	Name                  string       `json:"name"`
	Description           *string      `json:"description,omitempty"`
	RequiresJustification bool         `json:"requires_justification"`
	MaxDurationDays       *int         `json:"max_duration_days,omitempty"`
	ApproverRole          ApproverRole `json:"approver_role"`
	NoticeDays            int          `json:"notice_days"`
	Active                bool         `json:"active"`
}

func ToTypeResponse(lt LeaveType) LeaveTypeResponse {
	return LeaveTypeResponse{
		ID:                    lt.ID,
		Kind:                  lt.Kind,
		Name:                  lt.Name,
		Description:           lt.Description,
		RequiresJustification: lt.RequiresJustification,
		MaxDurationDays:       lt.MaxDurationDays,
		ApproverRole:          lt.ApproverRole,
		NoticeDays:            lt.NoticeDays,
		Active:                lt.Active,
	}
}

type CreateLeaveRequestRequest struct {
	EmployeeID              string  `json:"-"`
	LeaveTypeID             string  `json:"leave_type_id"`
	StartDate               string  `json:"start_date"`
	EndDate                 string  `json:"end_date"`
	Reason                  string  `json:"reason"`
	Priority                string  `json:"priority"`
	AttachmentURL           *string `json:"attachment_url"`
	ReplacementID           *string `json:"replacement_id"`
	ReplacementInstructions *string `json:"replacement_instructions"`
}

func (r CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveTypeID) {
		errs = append(errs, validator.ValidationError{Field: "leave_type_id", Message: "Leave type is required"})
	}
	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "Start date must be YYYY-MM-DD"})
	}
	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "End date must be YYYY-MM-DD"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "Reason is required"})
	}
	if r.Priority != "" && !validator.IsInSlice(r.Priority, []string{
		string(PriorityNormal), string(PriorityUrgent), string(PriorityCritical),
	}) {
		errs = append(errs, validator.ValidationError{Field: "priority", Message: "Unknown priority"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RejectRequestRequest struct {
	RequestID string `json:"-"`
	Reason    string `json:"reason"`
}

type RequestFilter struct {
	EmployeeID   *string
	EmployeeName *string
	LeaveTypeID  *string
	Status       *string
	StartDate    *string
	EndDate      *string
	Page         int
	Limit        int
	SortBy       string
	SortOrder    string
}

type LeaveRequestResponse struct {
	ID                      string     `json:"id"`
	EmployeeID              string     `json:"employee_id"`
	EmployeeName            *string    `json:"employee_name,omitempty"`
	LeaveTypeID             string     `json:"leave_type_id"`
	LeaveTypeName           *string    `json:"leave_type_name,omitempty"`
	StartDate               string     `json:"start_date"`
	EndDate                 string     `json:"end_date"`
	WorkingDays             int        `json:"working_days"`
	Reason                  string     `json:"reason"`
	Priority                Priority   `json:"priority"`
	AttachmentURL           *string    `json:"attachment_url,omitempty"`
	Status                  RequestStatus `json:"status"`
	ApproverID              *string    `json:"approver_id,omitempty"`
	DecidedAt               *time.Time `json:"decided_at,omitempty"`
	RejectionReason         *string    `json:"rejection_reason,omitempty"`
	ReplacementID           *string    `json:"replacement_id,omitempty"`
	ReplacementInstructions *string    `json:"replacement_instructions,omitempty"`
	SubmittedAt             time.Time  `json:"submitted_at"`
}

func ToRequestResponse(r LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:                      r.ID,
		EmployeeID:              r.EmployeeID,
		EmployeeName:            r.EmployeeName,
		LeaveTypeID:             r.LeaveTypeID,
		LeaveTypeName:           r.LeaveTypeName,
		StartDate:               r.StartDate.Format("2006-01-02"),
		EndDate:                 r.EndDate.Format("2006-01-02"),
		WorkingDays:             r.WorkingDays,
		Reason:                  r.Reason,
		Priority:                r.Priority,
		AttachmentURL:           r.AttachmentURL,
		Status:                  r.Status,
		ApproverID:              r.ApproverID,
		DecidedAt:               r.DecidedAt,
		RejectionReason:         r.RejectionReason,
		ReplacementID:           r.ReplacementID,
		ReplacementInstructions: r.ReplacementInstructions,
		SubmittedAt:             r.SubmittedAt,
	}
}

type ListRequestsResponse struct {
	Requests []LeaveRequestResponse `json:"requests"`
	Total    int64                  `json:"total"`
	Page     int                    `json:"page"`
	Limit    int                    `json:"limit"`
}

type HistoryEntryResponse struct {
	ID         string        `json:"id"`
	ActorID    string        `json:"actor_id"`
	Action     HistoryAction `json:"action"`
	FromStatus RequestStatus `json:"from_status"`
	ToStatus   RequestStatus `json:"to_status"`
	Comment    string        `json:"comment,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
}

func ToHistoryResponse(e HistoryEntry) HistoryEntryResponse {
	return HistoryEntryResponse{
		ID:         e.ID,
		ActorID:    e.ActorID,
		Action:     e.Action,
		FromStatus: e.FromStatus,
		ToStatus:   e.ToStatus,
		Comment:    e.Comment,
		CreatedAt:  e.CreatedAt,
	}
}
