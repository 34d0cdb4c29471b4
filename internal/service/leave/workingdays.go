package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/ikaze-hr/leave-backend-go/internal/domain/holiday"
	"github.com/ikaze-hr/leave-backend-go/internal/domain/leave"
)

// WorkingDaysCalculator counts the working days in an inclusive date range:
// Monday through Friday, public holidays excluded.
type WorkingDaysCalculator struct {
	calendar holiday.Calendar
	region   string
}

func NewWorkingDaysCalculator(calendar holiday.Calendar, region string) *WorkingDaysCalculator {
	return &WorkingDaysCalculator{calendar: calendar, region: region}
}

// CountWorkingDays iterates every calendar day from start to end inclusive.
// The holiday set is the union over every year the range touches, so a
// Dec 28 – Jan 3 request excludes holidays from both years.
func (c *WorkingDaysCalculator) CountWorkingDays(ctx context.Context, start, end time.Time) (int, error) {
	start = dateOnly(start)
	end = dateOnly(end)

	if end.Before(start) {
		return 0, leave.ErrInvalidRange
	}

	holidays := make(map[string]struct{})
	for year := start.Year(); year <= end.Year(); year++ {
		set, err := c.calendar.HolidaysFor(ctx, year, c.region)
		if err != nil {
			return 0, fmt.Errorf("failed to load %s holidays for %d: %w", c.region, year, err)
		}
		for key := range set {
			holidays[key] = struct{}{}
		}
	}

	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			continue
		}
		if _, isHoliday := holidays[holiday.DateKey(d)]; isHoliday {
			continue
		}
		count++
	}

	return count, nil
}

// dateOnly strips time-of-day and zone so day iteration never skips or
// double-counts across DST boundaries.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
