package holiday

import (
	"context"
	"time"
)

// Holiday is a single public holiday in a regional calendar.
type Holiday struct {
	ID     string
	Region string
	Date   time.Time
	Name   string
}

// DateKey normalizes a date for set membership; holidays are calendar days,
// so time-of-day and zone must not matter.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// Calendar supplies the non-working holiday dates for a year and region.
// Implementations must be pure lookups.
type Calendar interface {
	HolidaysFor(ctx context.Context, year int, region string) (map[string]struct{}, error)
}

// MemoryCalendar is a Calendar backed by a fixed set of dates, used in tests
// and as seed data for regions without a database-managed calendar.
type MemoryCalendar struct {
	byYear map[int]map[string]struct{}
}

func NewMemoryCalendar(dates ...time.Time) *MemoryCalendar {
	c := &MemoryCalendar{byYear: make(map[int]map[string]struct{})}
	for _, d := range dates {
		year := d.Year()
		if c.byYear[year] == nil {
			c.byYear[year] = make(map[string]struct{})
		}
		c.byYear[year][DateKey(d)] = struct{}{}
	}
	return c
}

func (c *MemoryCalendar) HolidaysFor(_ context.Context, year int, _ string) (map[string]struct{}, error) {
	set := c.byYear[year]
	if set == nil {
		return map[string]struct{}{}, nil
	}
	return set, nil
}
