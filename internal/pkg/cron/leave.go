package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ikaze-hr/leave-backend-go/internal/config"
	"github.com/ikaze-hr/leave-backend-go/internal/domain/employee"
	"github.com/ikaze-hr/leave-backend-go/internal/domain/leave"
	leavesvc "github.com/ikaze-hr/leave-backend-go/internal/service/leave"
	notificationsvc "github.com/ikaze-hr/leave-backend-go/internal/service/notification"
)

// LeaveJobs holds the background jobs of the leave engine.
type LeaveJobs struct {
	requestRepo     leave.LeaveRequestRepository
	typeRepo        leave.LeaveTypeRepository
	employeeRepo    employee.EmployeeRepository
	resolver        *leavesvc.ApproverResolver
	notificationSvc *notificationsvc.Service
	cfg             config.SchedulerConfig
	now             func() time.Time
}

func NewLeaveJobs(
	requestRepo leave.LeaveRequestRepository,
	typeRepo leave.LeaveTypeRepository,
	employeeRepo employee.EmployeeRepository,
	resolver *leavesvc.ApproverResolver,
	notificationSvc *notificationsvc.Service,
	cfg config.SchedulerConfig,
) *LeaveJobs {
	return &LeaveJobs{
		requestRepo:     requestRepo,
		typeRepo:        typeRepo,
		employeeRepo:    employeeRepo,
		resolver:        resolver,
		notificationSvc: notificationSvc,
		cfg:             cfg,
		now:             time.Now,
	}
}

// WithClock overrides the job clock, for tests.
func (j *LeaveJobs) WithClock(now func() time.Time) *LeaveJobs {
	j.now = now
	return j
}

func (j *LeaveJobs) RegisterJobs(scheduler *Scheduler) error {
	return scheduler.AddJob("send_approval_reminders", j.cfg.ApprovalReminderSpec, j.SendApprovalReminders)
}

// SendApprovalReminders nudges approvers about requests that have sat
// pending past the configured age. Each approver is reminded at most once
// per request, so rerunning the job is safe.
func (j *LeaveJobs) SendApprovalReminders(ctx context.Context) error {
	cutoff := j.now().AddDate(0, 0, -j.cfg.ReminderAfterDays)

	stale, err := j.requestRepo.ListPendingOlderThan(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to list stale pending requests: %w", err)
	}
	if len(stale) == 0 {
		return nil
	}

	reminded := 0
	for _, req := range stale {
		requester, err := j.employeeRepo.GetByID(ctx, req.EmployeeID)
		if err != nil {
			slog.Error("Cron: failed to load requester", "request_id", req.ID, "error", err)
			continue
		}

		lt, err := j.typeRepo.GetByID(ctx, req.LeaveTypeID)
		if err != nil {
			slog.Error("Cron: failed to load leave type", "request_id", req.ID, "error", err)
			continue
		}

		approvers, err := j.resolver.Resolve(ctx, requester, lt.ApproverRole)
		if err != nil {
			slog.Error("Cron: failed to resolve approvers", "request_id", req.ID, "error", err)
			continue
		}
		if len(approvers) == 0 {
			slog.Warn("Cron: stale request has no resolvable approver",
				"request_id", req.ID, "approver_role", lt.ApproverRole)
			continue
		}

		for _, approver := range approvers {
			if err := j.notificationSvc.RemindApprover(ctx, req, approver); err != nil {
				slog.Error("Cron: failed to remind approver",
					"request_id", req.ID, "approver_id", approver.ID, "error", err)
				continue
			}
			reminded++
		}
	}

	slog.Info("Cron: approval reminders sent", "stale_requests", len(stale), "reminders", reminded)
	return nil
}
