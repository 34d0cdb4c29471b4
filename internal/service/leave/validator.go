package leave

import (
	"context"
	"time"

	"github.com/ikaze-hr/leave-backend-go/internal/domain/employee"
	"github.com/ikaze-hr/leave-backend-go/internal/domain/leave"
)

// RequestValidator runs the submission checks in a fixed order and stops at
// the first failure, so a request with several problems reports the earliest
// one deterministically:
//
//	1. date range
//	2. justification attachment
//	3. notice period (waived for urgent and critical priority)
//	4. balance (annual leave only)
//	5. maximum duration cap
type RequestValidator struct {
	balance *BalanceTracker
}

func NewRequestValidator(balance *BalanceTracker) *RequestValidator {
	return &RequestValidator{balance: balance}
}

// Validate checks a candidate request whose working days were already
// computed. `today` is the submission date; it is passed in rather than read
// from the clock so callers control it.
func (v *RequestValidator) Validate(ctx context.Context, emp employee.Employee, lt leave.LeaveType, req leave.LeaveRequest, today time.Time) error {
	if req.EndDate.Before(req.StartDate) {
		return leave.ErrInvalidDateRange
	}

	if lt.RequiresJustification && (req.AttachmentURL == nil || *req.AttachmentURL == "") {
		return leave.ErrMissingJustification
	}

	if !req.Priority.BypassesNotice() {
		notice := int(dateOnly(req.StartDate).Sub(dateOnly(today)).Hours() / 24)
		if notice < lt.NoticeDays {
			return &leave.InsufficientNoticeError{
				RequiredDays: lt.NoticeDays,
				ActualDays:   notice,
			}
		}
	}

	if lt.Kind == leave.KindAnnual {
		if err := v.CheckBalance(ctx, emp, req); err != nil {
			return err
		}
	}

	if lt.MaxDurationDays != nil && req.WorkingDays > *lt.MaxDurationDays {
		return &leave.ExceedsMaxDurationError{
			RequestedDays: req.WorkingDays,
			MaxDays:       *lt.MaxDurationDays,
		}
	}

	return nil
}

// CheckBalance verifies the request fits the employee's remaining annual
// balance for the request's start year. It is also run again at approval
// time, where earlier approvals may have consumed the balance since
// submission.
func (v *RequestValidator) CheckBalance(ctx context.Context, emp employee.Employee, req leave.LeaveRequest) error {
	remaining, err := v.balance.RemainingDays(ctx, emp, req.StartDate.Year())
	if err != nil {
		return err
	}
	if req.WorkingDays > remaining {
		return &leave.InsufficientBalanceError{
			RequestedDays: req.WorkingDays,
			RemainingDays: remaining,
		}
	}
	return nil
}
