package leave

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ikaze-hr/leave-backend-go/internal/domain/employee"
	"github.com/ikaze-hr/leave-backend-go/internal/domain/leave"
)

// Notifier fans a lifecycle event out to the people who care about it.
// Delivery is best effort: implementations log failures and never return
// them, so a transition is never rolled back over a notification.
type Notifier interface {
	NotifyNewRequest(ctx context.Context, req leave.LeaveRequest, requester employee.Employee, lt leave.LeaveType, approvers []employee.Employee)
	NotifyDecision(ctx context.Context, req leave.LeaveRequest, requester employee.Employee, lt leave.LeaveType)
	NotifyCancellation(ctx context.Context, req leave.LeaveRequest, requester employee.Employee, approvers []employee.Employee)
}

// RequestService owns the request state machine. Every transition out of
// pending goes through a conditional update so two racing decisions cannot
// both win.
type RequestService struct {
	requests  leave.LeaveRequestRepository
	types     leave.LeaveTypeRepository
	history   leave.HistoryRepository
	employees employee.EmployeeRepository
	resolver  *ApproverResolver
	calc      *WorkingDaysCalculator
	validator *RequestValidator
	notifier  Notifier
	now       func() time.Time
}

func NewRequestService(
	requests leave.LeaveRequestRepository,
	types leave.LeaveTypeRepository,
	history leave.HistoryRepository,
	employees employee.EmployeeRepository,
	resolver *ApproverResolver,
	calc *WorkingDaysCalculator,
	validator *RequestValidator,
	notifier Notifier,
) *RequestService {
	return &RequestService{
		requests:  requests,
		types:     types,
		history:   history,
		employees: employees,
		resolver:  resolver,
		calc:      calc,
		validator: validator,
		notifier:  notifier,
		now:       time.Now,
	}
}

// WithClock overrides the service clock, for tests.
func (s *RequestService) WithClock(now func() time.Time) *RequestService {
	s.now = now
	return s
}

// Submit validates and persists a new leave request, records the audit
// entry, and notifies the resolved approvers. An unresolvable approver set
// is logged, not rejected: the request still exists and HR can fix the org
// data.
func (s *RequestService) Submit(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequest, error) {
	emp, err := s.employees.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	lt, err := s.types.GetByID(ctx, req.LeaveTypeID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	if !lt.Active {
		return leave.LeaveRequest{}, leave.ErrLeaveTypeInactive
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to parse start date: %w", err)
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to parse end date: %w", err)
	}

	if end.Before(start) {
		return leave.LeaveRequest{}, leave.ErrInvalidDateRange
	}

	workingDays, err := s.calc.CountWorkingDays(ctx, start, end)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	priority := leave.Priority(req.Priority)
	if priority == "" {
		priority = leave.PriorityNormal
	}

	now := s.now()
	request := leave.LeaveRequest{
		ID:                      uuid.New().String(),
		EmployeeID:              emp.ID,
		LeaveTypeID:             lt.ID,
		StartDate:               dateOnly(start),
		EndDate:                 dateOnly(end),
		WorkingDays:             workingDays,
		Reason:                  req.Reason,
		AttachmentURL:           req.AttachmentURL,
		Priority:                priority,
		Status:                  leave.StatusPending,
		ReplacementID:           req.ReplacementID,
		ReplacementInstructions: req.ReplacementInstructions,
		SubmittedAt:             now,
	}

	if err := s.validator.Validate(ctx, emp, lt, request, now); err != nil {
		return leave.LeaveRequest{}, err
	}

	created, err := s.requests.Create(ctx, request)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	s.appendHistory(ctx, leave.HistoryEntry{
		RequestID:  created.ID,
		ActorID:    emp.ID,
		Action:     leave.ActionSubmitted,
		FromStatus: leave.StatusPending,
		ToStatus:   leave.StatusPending,
	})

	approvers, err := s.resolver.Resolve(ctx, emp, lt.ApproverRole)
	if err != nil {
		slog.Error("failed to resolve approvers", "request_id", created.ID, "error", err)
	} else if len(approvers) == 0 {
		slog.Warn("no approver resolved for request",
			"request_id", created.ID,
			"employee_id", emp.ID,
			"approver_role", lt.ApproverRole,
		)
	}

	s.notifier.NotifyNewRequest(ctx, created, emp, lt, approvers)

	return created, nil
}

// Approve transitions a pending request to approved. The balance is
// re-checked at decision time for annual leave, since other approvals may
// have landed between submission and now.
func (s *RequestService) Approve(ctx context.Context, requestID string, actor employee.Employee) (leave.LeaveRequest, error) {
	req, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	if req.Status != leave.StatusPending {
		return leave.LeaveRequest{}, leave.ErrStaleState
	}

	if err := s.requireEligibleApprover(ctx, req, actor); err != nil {
		return leave.LeaveRequest{}, err
	}

	lt, err := s.types.GetByID(ctx, req.LeaveTypeID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	requester, err := s.employees.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	if lt.Kind == leave.KindAnnual {
		if err := s.validator.CheckBalance(ctx, requester, req); err != nil {
			return leave.LeaveRequest{}, err
		}
	}

	now := s.now()
	err = s.requests.UpdateStatusIf(ctx, req.ID, leave.StatusPending, leave.StatusUpdate{
		To:         leave.StatusApproved,
		ApproverID: &actor.ID,
		DecidedAt:  &now,
	})
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	s.appendHistory(ctx, leave.HistoryEntry{
		RequestID:  req.ID,
		ActorID:    actor.ID,
		Action:     leave.ActionApproved,
		FromStatus: leave.StatusPending,
		ToStatus:   leave.StatusApproved,
	})

	updated, err := s.requests.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	s.notifier.NotifyDecision(ctx, updated, requester, lt)

	return updated, nil
}

// Reject transitions a pending request to rejected. A reason is mandatory.
func (s *RequestService) Reject(ctx context.Context, dto leave.RejectRequestRequest, actor employee.Employee) (leave.LeaveRequest, error) {
	if dto.Reason == "" {
		return leave.LeaveRequest{}, leave.ErrMissingRejectionReason
	}

	req, err := s.requests.GetByID(ctx, dto.RequestID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	if req.Status != leave.StatusPending {
		return leave.LeaveRequest{}, leave.ErrStaleState
	}

	if err := s.requireEligibleApprover(ctx, req, actor); err != nil {
		return leave.LeaveRequest{}, err
	}

	lt, err := s.types.GetByID(ctx, req.LeaveTypeID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	requester, err := s.employees.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	now := s.now()
	err = s.requests.UpdateStatusIf(ctx, req.ID, leave.StatusPending, leave.StatusUpdate{
		To:              leave.StatusRejected,
		ApproverID:      &actor.ID,
		DecidedAt:       &now,
		RejectionReason: &dto.Reason,
	})
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	s.appendHistory(ctx, leave.HistoryEntry{
		RequestID:  req.ID,
		ActorID:    actor.ID,
		Action:     leave.ActionRejected,
		FromStatus: leave.StatusPending,
		ToStatus:   leave.StatusRejected,
		Comment:    dto.Reason,
	})

	updated, err := s.requests.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	s.notifier.NotifyDecision(ctx, updated, requester, lt)

	return updated, nil
}

// Cancel withdraws a pending request. Only the requester may cancel, and
// only while the request is still pending.
func (s *RequestService) Cancel(ctx context.Context, requestID, actorID string) (leave.LeaveRequest, error) {
	req, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	if req.EmployeeID != actorID {
		return leave.LeaveRequest{}, leave.ErrNotRequester
	}
	if req.Status != leave.StatusPending {
		return leave.LeaveRequest{}, leave.ErrStaleState
	}

	err = s.requests.UpdateStatusIf(ctx, req.ID, leave.StatusPending, leave.StatusUpdate{
		To: leave.StatusCancelled,
	})
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	s.appendHistory(ctx, leave.HistoryEntry{
		RequestID:  req.ID,
		ActorID:    actorID,
		Action:     leave.ActionCancelled,
		FromStatus: leave.StatusPending,
		ToStatus:   leave.StatusCancelled,
	})

	updated, err := s.requests.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	requester, err := s.employees.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	lt, err := s.types.GetByID(ctx, req.LeaveTypeID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	approvers, err := s.resolver.Resolve(ctx, requester, lt.ApproverRole)
	if err != nil {
		slog.Error("failed to resolve approvers for cancellation notice", "request_id", req.ID, "error", err)
		approvers = nil
	}

	s.notifier.NotifyCancellation(ctx, updated, requester, approvers)

	return updated, nil
}

// GetRequest returns one request by id.
func (s *RequestService) GetRequest(ctx context.Context, requestID string) (leave.LeaveRequest, error) {
	return s.requests.GetByID(ctx, requestID)
}

// ListRequests returns requests matching the filter, for reviewers.
func (s *RequestService) ListRequests(ctx context.Context, filter leave.RequestFilter) ([]leave.LeaveRequest, int64, error) {
	return s.requests.List(ctx, filter)
}

// ListEmployeeRequests returns the requests of a single employee.
func (s *RequestService) ListEmployeeRequests(ctx context.Context, employeeID string, filter leave.RequestFilter) ([]leave.LeaveRequest, int64, error) {
	return s.requests.ListByEmployee(ctx, employeeID, filter)
}

// GetHistory returns the audit trail of a request, oldest first.
func (s *RequestService) GetHistory(ctx context.Context, requestID string) ([]leave.HistoryEntry, error) {
	if _, err := s.requests.GetByID(ctx, requestID); err != nil {
		return nil, err
	}
	return s.history.ListByRequest(ctx, requestID)
}

// IsEligibleApprover reports whether the actor belongs to the approver set
// resolved for the request. Admins are always eligible.
func (s *RequestService) IsEligibleApprover(ctx context.Context, req leave.LeaveRequest, actor employee.Employee) (bool, error) {
	if actor.IsAdmin() {
		return true, nil
	}

	lt, err := s.types.GetByID(ctx, req.LeaveTypeID)
	if err != nil {
		return false, err
	}
	requester, err := s.employees.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return false, err
	}
	approvers, err := s.resolver.Resolve(ctx, requester, lt.ApproverRole)
	if err != nil {
		return false, err
	}
	for _, approver := range approvers {
		if approver.ID == actor.ID {
			return true, nil
		}
	}
	return false, nil
}

func (s *RequestService) requireEligibleApprover(ctx context.Context, req leave.LeaveRequest, actor employee.Employee) error {
	ok, err := s.IsEligibleApprover(ctx, req, actor)
	if err != nil {
		return err
	}
	if !ok {
		return leave.ErrNotEligibleApprover
	}
	return nil
}

// appendHistory writes an audit entry. The audit log is advisory; a failed
// append is logged and never unwinds the transition it records.
func (s *RequestService) appendHistory(ctx context.Context, entry leave.HistoryEntry) {
	entry.ID = uuid.New().String()
	entry.CreatedAt = s.now()
	if _, err := s.history.Append(ctx, entry); err != nil {
		slog.Error("failed to append request history",
			"request_id", entry.RequestID,
			"action", entry.Action,
			"error", err,
		)
	}
}
