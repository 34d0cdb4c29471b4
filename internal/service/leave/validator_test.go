package leave

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ikaze-hr/leave-backend-go/internal/domain/employee"
	"github.com/ikaze-hr/leave-backend-go/internal/domain/holiday"
	"github.com/ikaze-hr/leave-backend-go/internal/domain/leave"
)

func intPtr(i int) *int { return &i }

func newTestValidator(requests *fakeRequestRepo) *RequestValidator {
	calc := NewWorkingDaysCalculator(holiday.NewMemoryCalendar(), "BI")
	return NewRequestValidator(NewBalanceTracker(requests, calc))
}

func annualType() leave.LeaveType {
	return leave.LeaveType{
		ID: "lt-annual", Kind: leave.KindAnnual, Name: "Annual leave",
		ApproverRole: leave.ApproverManager, NoticeDays: 3, Active: true,
	}
}

func TestRequestValidator_DateRangeCheckedFirst(t *testing.T) {
	v := newTestValidator(newFakeRequestRepo())
	emp := employee.Employee{ID: "emp-1", AnnualAllocationDays: 30}

	// Inverted range plus a missing justification: the range error wins.
	lt := annualType()
	lt.RequiresJustification = true
	req := leave.LeaveRequest{
		StartDate: date(2026, time.June, 10),
		EndDate:   date(2026, time.June, 5),
	}

	err := v.Validate(context.Background(), emp, lt, req, date(2026, time.June, 1))

	assert.ErrorIs(t, err, leave.ErrInvalidDateRange)
}

func TestRequestValidator_MissingJustification(t *testing.T) {
	v := newTestValidator(newFakeRequestRepo())
	emp := employee.Employee{ID: "emp-1", AnnualAllocationDays: 30}

	lt := annualType()
	lt.RequiresJustification = true
	req := leave.LeaveRequest{
		StartDate:   date(2026, time.June, 10),
		EndDate:     date(2026, time.June, 12),
		WorkingDays: 3,
		Priority:    leave.PriorityNormal,
	}

	err := v.Validate(context.Background(), emp, lt, req, date(2026, time.June, 1))
	assert.ErrorIs(t, err, leave.ErrMissingJustification)

	req.AttachmentURL = strPtr("https://files.example.com/note.pdf")
	err = v.Validate(context.Background(), emp, lt, req, date(2026, time.June, 1))
	assert.NoError(t, err)
}

func TestRequestValidator_InsufficientNotice(t *testing.T) {
	v := newTestValidator(newFakeRequestRepo())
	emp := employee.Employee{ID: "emp-1", AnnualAllocationDays: 30}

	lt := annualType()
	lt.NoticeDays = 7
	req := leave.LeaveRequest{
		StartDate:   date(2026, time.June, 10),
		EndDate:     date(2026, time.June, 12),
		WorkingDays: 3,
		Priority:    leave.PriorityNormal,
	}

	err := v.Validate(context.Background(), emp, lt, req, date(2026, time.June, 8))
	require.ErrorIs(t, err, leave.ErrInsufficientNotice)

	var noticeErr *leave.InsufficientNoticeError
	require.True(t, errors.As(err, &noticeErr))
	assert.Equal(t, 7, noticeErr.RequiredDays)
	assert.Equal(t, 2, noticeErr.ActualDays)
}

func TestRequestValidator_UrgentPriorityWaivesNotice(t *testing.T) {
	v := newTestValidator(newFakeRequestRepo())
	emp := employee.Employee{ID: "emp-1", AnnualAllocationDays: 30}

	lt := annualType()
	lt.NoticeDays = 7
	req := leave.LeaveRequest{
		StartDate:   date(2026, time.June, 10),
		EndDate:     date(2026, time.June, 12),
		WorkingDays: 3,
		Priority:    leave.PriorityUrgent,
	}

	err := v.Validate(context.Background(), emp, lt, req, date(2026, time.June, 9))
	assert.NoError(t, err)
}

func TestRequestValidator_InsufficientBalance(t *testing.T) {
	// 28 of 30 days already approved this year.
	requests := newFakeRequestRepo(
		leave.LeaveRequest{
			ID: "r1", EmployeeID: "emp-1", Status: leave.StatusApproved,
			// Mon Jun 1 - Fri Jul 10 2026 spans 6 weeks: 30 working days... use shorter
			StartDate: date(2026, time.March, 2), EndDate: date(2026, time.April, 8),
		},
	)
	v := newTestValidator(requests)
	emp := employee.Employee{ID: "emp-1", AnnualAllocationDays: 30}

	req := leave.LeaveRequest{
		EmployeeID:  "emp-1",
		StartDate:   date(2026, time.June, 8),
		EndDate:     date(2026, time.June, 12),
		WorkingDays: 5,
		Priority:    leave.PriorityNormal,
	}

	err := v.Validate(context.Background(), emp, annualType(), req, date(2026, time.June, 1))
	require.ErrorIs(t, err, leave.ErrInsufficientBalance)

	var balErr *leave.InsufficientBalanceError
	require.True(t, errors.As(err, &balErr))
	assert.Equal(t, 5, balErr.RequestedDays)
	assert.Equal(t, 2, balErr.RemainingDays)
}

func TestRequestValidator_BalanceSkippedForNonAnnual(t *testing.T) {
	// No allocation at all, but sick leave does not draw on the annual balance.
	v := newTestValidator(newFakeRequestRepo())
	emp := employee.Employee{ID: "emp-1", AnnualAllocationDays: 0}

	lt := leave.LeaveType{
		ID: "lt-sick", Kind: leave.KindSick, Name: "Sick leave",
		ApproverRole: leave.ApproverHR, NoticeDays: 0, Active: true,
	}
	req := leave.LeaveRequest{
		StartDate:   date(2026, time.June, 8),
		EndDate:     date(2026, time.June, 12),
		WorkingDays: 5,
		Priority:    leave.PriorityNormal,
	}

	err := v.Validate(context.Background(), emp, lt, req, date(2026, time.June, 8))
	assert.NoError(t, err)
}

func TestRequestValidator_ExceedsMaxDuration(t *testing.T) {
	v := newTestValidator(newFakeRequestRepo())
	emp := employee.Employee{ID: "emp-1", AnnualAllocationDays: 30}

	lt := annualType()
	lt.MaxDurationDays = intPtr(3)
	req := leave.LeaveRequest{
		StartDate:   date(2026, time.June, 8),
		EndDate:     date(2026, time.June, 12),
		WorkingDays: 5,
		Priority:    leave.PriorityNormal,
	}

	err := v.Validate(context.Background(), emp, lt, req, date(2026, time.June, 1))
	require.ErrorIs(t, err, leave.ErrExceedsMaxDuration)

	var durErr *leave.ExceedsMaxDurationError
	require.True(t, errors.As(err, &durErr))
	assert.Equal(t, 5, durErr.RequestedDays)
	assert.Equal(t, 3, durErr.MaxDays)
}

func TestRequestValidator_NoticeReportedBeforeBalance(t *testing.T) {
	// Both notice and balance would fail; the notice error comes first.
	v := newTestValidator(newFakeRequestRepo())
	emp := employee.Employee{ID: "emp-1", AnnualAllocationDays: 0}

	req := leave.LeaveRequest{
		EmployeeID:  "emp-1",
		StartDate:   date(2026, time.June, 10),
		EndDate:     date(2026, time.June, 12),
		WorkingDays: 3,
		Priority:    leave.PriorityNormal,
	}

	err := v.Validate(context.Background(), emp, annualType(), req, date(2026, time.June, 9))
	assert.ErrorIs(t, err, leave.ErrInsufficientNotice)
}
