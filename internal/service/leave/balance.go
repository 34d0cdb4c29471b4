package leave

import (
	"context"
	"fmt"

	"github.com/ikaze-hr/leave-backend-go/internal/domain/employee"
	"github.com/ikaze-hr/leave-backend-go/internal/domain/leave"
)

// BalanceTracker computes annual leave consumption from approved request
// history. It holds no state of its own; two calls without an intervening
// approval return the same numbers.
type BalanceTracker struct {
	requests leave.LeaveRequestRepository
	calc     *WorkingDaysCalculator
}

func NewBalanceTracker(requests leave.LeaveRequestRepository, calc *WorkingDaysCalculator) *BalanceTracker {
	return &BalanceTracker{requests: requests, calc: calc}
}

// ConsumedDays sums the working days of every approved request whose start
// date falls in the given year. Days are recomputed against the current
// holiday calendar rather than read from the stored snapshot.
func (b *BalanceTracker) ConsumedDays(ctx context.Context, emp employee.Employee, year int) (int, error) {
	approved, err := b.requests.ListApprovedByEmployeeAndYear(ctx, emp.ID, year)
	if err != nil {
		return 0, fmt.Errorf("failed to list approved requests: %w", err)
	}

	total := 0
	for _, req := range approved {
		days, err := b.calc.CountWorkingDays(ctx, req.StartDate, req.EndDate)
		if err != nil {
			return 0, fmt.Errorf("failed to count working days for request %s: %w", req.ID, err)
		}
		total += days
	}

	return total, nil
}

// RemainingDays returns allocation minus consumption for the year. The
// result may be negative: over-allocation is reported, never clamped, so
// anomalies surface upstream instead of being hidden.
func (b *BalanceTracker) RemainingDays(ctx context.Context, emp employee.Employee, year int) (int, error) {
	consumed, err := b.ConsumedDays(ctx, emp, year)
	if err != nil {
		return 0, err
	}
	return emp.AnnualAllocationDays - consumed, nil
}
