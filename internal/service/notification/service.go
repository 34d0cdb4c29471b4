package notification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ikaze-hr/leave-backend-go/internal/domain/employee"
	"github.com/ikaze-hr/leave-backend-go/internal/domain/leave"
	"github.com/ikaze-hr/leave-backend-go/internal/domain/notification"
	"github.com/ikaze-hr/leave-backend-go/internal/pkg/email"
)

// Service creates and serves in-app notifications, and mirrors the
// important ones to email. It satisfies the lifecycle's Notifier interface.
type Service struct {
	notifications notification.Repository
	employees     employee.EmployeeRepository
	email         email.EmailService
	now           func() time.Time
}

func NewService(notifications notification.Repository, employees employee.EmployeeRepository, emailSvc email.EmailService) *Service {
	return &Service{
		notifications: notifications,
		employees:     employees,
		email:         emailSvc,
		now:           time.Now,
	}
}

// WithClock overrides the service clock, for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// NotifyNewRequest informs every resolved approver that a request awaits
// them. Failures are logged and swallowed; a submitted request stands
// whether or not anyone heard about it.
func (s *Service) NotifyNewRequest(ctx context.Context, req leave.LeaveRequest, requester employee.Employee, lt leave.LeaveType, approvers []employee.Employee) {
	if len(approvers) == 0 {
		return
	}

	now := s.now()
	batch := make([]notification.Notification, 0, len(approvers))
	for _, approver := range approvers {
		batch = append(batch, notification.Notification{
			ID:            uuid.New().String(),
			RequestID:     req.ID,
			RecipientID:   approver.ID,
			Kind:          notification.KindNewRequest,
			RecipientRole: notification.RoleApprover,
			Title:         "New leave request",
			Message: fmt.Sprintf("%s requested %s from %s to %s (%d working days)",
				requester.FullName, lt.Name,
				req.StartDate.Format("2006-01-02"), req.EndDate.Format("2006-01-02"),
				req.WorkingDays),
			CreatedAt: now,
		})
	}

	if err := s.notifications.CreateBatch(ctx, batch); err != nil {
		slog.Error("failed to create new-request notifications", "request_id", req.ID, "error", err)
	}

	for _, approver := range approvers {
		err := s.email.SendNewRequest(approver.Email, approver.FullName, requester.FullName,
			lt.Name, req.StartDate.Format("2006-01-02"), req.EndDate.Format("2006-01-02"))
		if err != nil {
			slog.Error("failed to send new-request email", "request_id", req.ID, "to", approver.Email, "error", err)
		}
	}
}

// NotifyDecision informs the requester of an approval or rejection, and
// copies the requester's manager when the manager is someone else.
func (s *Service) NotifyDecision(ctx context.Context, req leave.LeaveRequest, requester employee.Employee, lt leave.LeaveType) {
	kind := notification.KindApproved
	verb := "approved"
	if req.Status == leave.StatusRejected {
		kind = notification.KindRejected
		verb = "rejected"
	}

	message := fmt.Sprintf("Your %s request from %s to %s was %s",
		lt.Name, req.StartDate.Format("2006-01-02"), req.EndDate.Format("2006-01-02"), verb)
	if req.RejectionReason != nil && *req.RejectionReason != "" {
		message += ": " + *req.RejectionReason
	}

	now := s.now()
	batch := []notification.Notification{{
		ID:            uuid.New().String(),
		RequestID:     req.ID,
		RecipientID:   requester.ID,
		Kind:          kind,
		RecipientRole: notification.RoleEmployee,
		Title:         "Leave request " + verb,
		Message:       message,
		CreatedAt:     now,
	}}

	if requester.ManagerID != nil && *requester.ManagerID != requester.ID {
		if req.ApproverID == nil || *req.ApproverID != *requester.ManagerID {
			batch = append(batch, notification.Notification{
				ID:            uuid.New().String(),
				RequestID:     req.ID,
				RecipientID:   *requester.ManagerID,
				Kind:          kind,
				RecipientRole: notification.RoleManager,
				Title:         "Leave request " + verb,
				Message: fmt.Sprintf("%s's %s request from %s to %s was %s",
					requester.FullName, lt.Name,
					req.StartDate.Format("2006-01-02"), req.EndDate.Format("2006-01-02"), verb),
				CreatedAt: now,
			})
		}
	}

	if err := s.notifications.CreateBatch(ctx, batch); err != nil {
		slog.Error("failed to create decision notifications", "request_id", req.ID, "error", err)
	}

	reason := ""
	if req.RejectionReason != nil {
		reason = *req.RejectionReason
	}
	if err := s.email.SendDecision(requester.Email, requester.FullName, lt.Name, verb, reason); err != nil {
		slog.Error("failed to send decision email", "request_id", req.ID, "to", requester.Email, "error", err)
	}
}

// NotifyCancellation tells the approvers a pending request was withdrawn,
// so stale items leave their queues.
func (s *Service) NotifyCancellation(ctx context.Context, req leave.LeaveRequest, requester employee.Employee, approvers []employee.Employee) {
	if len(approvers) == 0 {
		return
	}

	now := s.now()
	batch := make([]notification.Notification, 0, len(approvers))
	for _, approver := range approvers {
		batch = append(batch, notification.Notification{
			ID:            uuid.New().String(),
			RequestID:     req.ID,
			RecipientID:   approver.ID,
			Kind:          notification.KindCancelled,
			RecipientRole: notification.RoleApprover,
			Title:         "Leave request cancelled",
			Message: fmt.Sprintf("%s withdrew their request from %s to %s",
				requester.FullName, req.StartDate.Format("2006-01-02"), req.EndDate.Format("2006-01-02")),
			CreatedAt: now,
		})
	}

	if err := s.notifications.CreateBatch(ctx, batch); err != nil {
		slog.Error("failed to create cancellation notifications", "request_id", req.ID, "error", err)
	}
}

// RemindApprover records an approval reminder unless one was already sent
// for this request and recipient.
func (s *Service) RemindApprover(ctx context.Context, req leave.LeaveRequest, approver employee.Employee) error {
	exists, err := s.notifications.HasReminder(ctx, req.ID, approver.ID)
	if err != nil {
		return fmt.Errorf("failed to check existing reminder: %w", err)
	}
	if exists {
		return nil
	}

	_, err = s.notifications.Create(ctx, notification.Notification{
		ID:            uuid.New().String(),
		RequestID:     req.ID,
		RecipientID:   approver.ID,
		Kind:          notification.KindApprovalReminder,
		RecipientRole: notification.RoleApprover,
		Title:         "Leave request still pending",
		Message: fmt.Sprintf("A leave request submitted on %s is still waiting for your decision",
			req.SubmittedAt.Format("2006-01-02")),
		CreatedAt: s.now(),
	})
	if err != nil {
		return fmt.Errorf("failed to create reminder: %w", err)
	}
	return nil
}

// List returns a page of the recipient's notifications together with their
// unread count.
func (s *Service) List(ctx context.Context, recipientID string, unreadOnly bool, page, limit int) (notification.ListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	items, total, err := s.notifications.ListByRecipient(ctx, recipientID, unreadOnly, page, limit)
	if err != nil {
		return notification.ListResponse{}, fmt.Errorf("failed to list notifications: %w", err)
	}

	unread, err := s.notifications.UnreadCount(ctx, recipientID)
	if err != nil {
		return notification.ListResponse{}, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	responses := make([]notification.NotificationResponse, 0, len(items))
	for _, n := range items {
		responses = append(responses, notification.ToResponse(n))
	}

	return notification.ListResponse{
		Notifications: responses,
		Total:         total,
		UnreadCount:   unread,
		Page:          page,
		Limit:         limit,
	}, nil
}

// MarkAsRead marks the given notifications read for the recipient. Rows
// already read keep their original read timestamp.
func (s *Service) MarkAsRead(ctx context.Context, recipientID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return s.notifications.MarkAsRead(ctx, recipientID, ids)
}

func (s *Service) MarkAllAsRead(ctx context.Context, recipientID string) error {
	return s.notifications.MarkAllAsRead(ctx, recipientID)
}

func (s *Service) UnreadCount(ctx context.Context, recipientID string) (int, error) {
	return s.notifications.UnreadCount(ctx, recipientID)
}
