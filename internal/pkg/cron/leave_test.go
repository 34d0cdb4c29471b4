package cron

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ikaze-hr/leave-backend-go/internal/config"
	"github.com/ikaze-hr/leave-backend-go/internal/domain/employee"
	"github.com/ikaze-hr/leave-backend-go/internal/domain/leave"
	"github.com/ikaze-hr/leave-backend-go/internal/domain/notification"
	"github.com/ikaze-hr/leave-backend-go/internal/domain/org"
	leavesvc "github.com/ikaze-hr/leave-backend-go/internal/service/leave"
	notificationsvc "github.com/ikaze-hr/leave-backend-go/internal/service/notification"
)

type fakeEmployeeRepo struct {
	byID map[string]employee.Employee
}

func (r *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := r.byID[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *fakeEmployeeRepo) GetByEmail(_ context.Context, _ string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) List(_ context.Context, _ employee.Filter) ([]employee.Employee, error) {
	return nil, nil
}

func (r *fakeEmployeeRepo) ListActiveByRole(_ context.Context, _ employee.Role) ([]employee.Employee, error) {
	return nil, nil
}

func (r *fakeEmployeeRepo) Update(_ context.Context, _ employee.UpdateEmployeeRequest) error {
	return nil
}

type fakeOrgRepo struct{}

func (fakeOrgRepo) GetDirection(_ context.Context, _ string) (org.Direction, error) {
	return org.Direction{}, org.ErrDirectionNotFound
}

func (fakeOrgRepo) GetService(_ context.Context, _ string) (org.Service, error) {
	return org.Service{}, org.ErrServiceNotFound
}

func (fakeOrgRepo) GetDepartment(_ context.Context, _ string) (org.Department, error) {
	return org.Department{}, org.ErrDepartmentNotFound
}

func (fakeOrgRepo) ListDirections(_ context.Context) ([]org.Direction, error)   { return nil, nil }
func (fakeOrgRepo) ListServices(_ context.Context) ([]org.Service, error)       { return nil, nil }
func (fakeOrgRepo) ListDepartments(_ context.Context) ([]org.Department, error) { return nil, nil }

type fakeTypeRepo struct {
	byID map[string]leave.LeaveType
}

func (r *fakeTypeRepo) Create(_ context.Context, lt leave.LeaveType) (leave.LeaveType, error) {
	return lt, nil
}

func (r *fakeTypeRepo) GetByID(_ context.Context, id string) (leave.LeaveType, error) {
	lt, ok := r.byID[id]
	if !ok {
		return leave.LeaveType{}, leave.ErrLeaveTypeNotFound
	}
	return lt, nil
}

func (r *fakeTypeRepo) ListActive(_ context.Context) ([]leave.LeaveType, error) { return nil, nil }
func (r *fakeTypeRepo) List(_ context.Context) ([]leave.LeaveType, error)       { return nil, nil }
func (r *fakeTypeRepo) Update(_ context.Context, _ leave.UpdateLeaveTypeRequest) error {
	return nil
}

type fakeRequestRepo struct {
	pending []leave.LeaveRequest
}

func (r *fakeRequestRepo) Create(_ context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	return req, nil
}

func (r *fakeRequestRepo) GetByID(_ context.Context, _ string) (leave.LeaveRequest, error) {
	return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
}

func (r *fakeRequestRepo) List(_ context.Context, _ leave.RequestFilter) ([]leave.LeaveRequest, int64, error) {
	return nil, 0, nil
}

func (r *fakeRequestRepo) ListByEmployee(_ context.Context, _ string, _ leave.RequestFilter) ([]leave.LeaveRequest, int64, error) {
	return nil, 0, nil
}

func (r *fakeRequestRepo) ListApprovedByEmployeeAndYear(_ context.Context, _ string, _ int) ([]leave.LeaveRequest, error) {
	return nil, nil
}

func (r *fakeRequestRepo) ListPendingOlderThan(_ context.Context, cutoff time.Time) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, req := range r.pending {
		if !req.SubmittedAt.After(cutoff) {
			out = append(out, req)
		}
	}
	return out, nil
}

func (r *fakeRequestRepo) UpdateStatusIf(_ context.Context, _ string, _ leave.RequestStatus, _ leave.StatusUpdate) error {
	return nil
}

type fakeNotificationRepo struct {
	created []notification.Notification
}

func (r *fakeNotificationRepo) Create(_ context.Context, n notification.Notification) (notification.Notification, error) {
	r.created = append(r.created, n)
	return n, nil
}

func (r *fakeNotificationRepo) CreateBatch(_ context.Context, ns []notification.Notification) error {
	r.created = append(r.created, ns...)
	return nil
}

func (r *fakeNotificationRepo) ListByRecipient(_ context.Context, _ string, _ bool, _, _ int) ([]notification.Notification, int64, error) {
	return nil, 0, nil
}

func (r *fakeNotificationRepo) UnreadCount(_ context.Context, _ string) (int, error) {
	return 0, nil
}

func (r *fakeNotificationRepo) MarkAsRead(_ context.Context, _ string, _ []string) error {
	return nil
}

func (r *fakeNotificationRepo) MarkAllAsRead(_ context.Context, _ string) error {
	return nil
}

func (r *fakeNotificationRepo) HasReminder(_ context.Context, requestID, recipientID string) (bool, error) {
	for _, n := range r.created {
		if n.RequestID == requestID && n.RecipientID == recipientID && n.Kind == notification.KindApprovalReminder {
			return true, nil
		}
	}
	return false, nil
}

type noopEmail struct{}

func (noopEmail) SendDecision(_, _, _, _, _ string) error      { return nil }
func (noopEmail) SendNewRequest(_, _, _, _, _, _ string) error { return nil }

func TestLeaveJobs_SendApprovalReminders(t *testing.T) {
	now := time.Date(2026, time.June, 10, 7, 0, 0, 0, time.UTC)
	managerID := "mgr-1"

	employees := &fakeEmployeeRepo{byID: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", ManagerID: &managerID, Active: true},
		"mgr-1": {ID: "mgr-1", Role: employee.RoleManager, Email: "grace@example.com", Active: true},
	}}
	types := &fakeTypeRepo{byID: map[string]leave.LeaveType{
		"lt-annual": {ID: "lt-annual", Kind: leave.KindAnnual, ApproverRole: leave.ApproverManager, Active: true},
	}}
	requests := &fakeRequestRepo{pending: []leave.LeaveRequest{
		// four days old, past the three day threshold
		{ID: "req-old", EmployeeID: "emp-1", LeaveTypeID: "lt-annual",
			Status: leave.StatusPending, SubmittedAt: now.AddDate(0, 0, -4)},
		// submitted yesterday, not stale yet
		{ID: "req-fresh", EmployeeID: "emp-1", LeaveTypeID: "lt-annual",
			Status: leave.StatusPending, SubmittedAt: now.AddDate(0, 0, -1)},
	}}
	notifications := &fakeNotificationRepo{}
	notificationSvc := notificationsvc.NewService(notifications, employees, noopEmail{})

	jobs := NewLeaveJobs(requests, types, employees,
		leavesvc.NewApproverResolver(employees, fakeOrgRepo{}),
		notificationSvc,
		config.SchedulerConfig{ReminderAfterDays: 3},
	).WithClock(func() time.Time { return now })

	require.NoError(t, jobs.SendApprovalReminders(context.Background()))

	require.Len(t, notifications.created, 1)
	assert.Equal(t, "req-old", notifications.created[0].RequestID)
	assert.Equal(t, "mgr-1", notifications.created[0].RecipientID)
	assert.Equal(t, notification.KindApprovalReminder, notifications.created[0].Kind)

	// Second run stays quiet.
	require.NoError(t, jobs.SendApprovalReminders(context.Background()))
	assert.Len(t, notifications.created, 1)
}
