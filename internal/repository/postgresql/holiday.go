package postgresql

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5"

	"github.com/ikaze-hr/leave-backend-go/internal/domain/holiday"
	"github.com/ikaze-hr/leave-backend-go/internal/pkg/database"
)

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepositoryImpl{db: db}
}

func (r *holidayRepositoryImpl) GetByID(ctx context.Context, id string) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	var h holiday.Holiday
	err := q.QueryRow(ctx, `SELECT id, region, date, name FROM holidays WHERE id = $1`, id).
		Scan(&h.ID, &h.Region, &h.Date, &h.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return holiday.Holiday{}, holiday.ErrHolidayNotFound
		}
		return holiday.Holiday{}, err
	}
	return h, nil
}

func (r *holidayRepositoryImpl) ListByYearAndRegion(ctx context.Context, year int, region string) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, region, date, name
		FROM holidays
		WHERE region = $1 AND EXTRACT(YEAR FROM date) = $2
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, region, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holidays []holiday.Holiday
	for rows.Next() {
		var h holiday.Holiday
		if err := rows.Scan(&h.ID, &h.Region, &h.Date, &h.Name); err != nil {
			return nil, err
		}
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}

func (r *holidayRepositoryImpl) Create(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO holidays (id, region, date, name)
		VALUES ($1, $2, $3, $4)
	`

	if _, err := q.Exec(ctx, query, h.ID, h.Region, h.Date, h.Name); err != nil {
		return holiday.Holiday{}, err
	}
	return h, nil
}

func (r *holidayRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM holidays WHERE id = $1`, id)
	return err
}

// DBCalendar adapts the holiday table to the Calendar lookup used by the
// working-day calculator, with a small per-process cache since the calendar
// changes rarely. Mutating the holiday table must be followed by Invalidate.
type DBCalendar struct {
	repo holiday.HolidayRepository

	mu    sync.RWMutex
	cache map[string]map[string]struct{}
}

func NewDBCalendar(repo holiday.HolidayRepository) *DBCalendar {
	return &DBCalendar{
		repo:  repo,
		cache: make(map[string]map[string]struct{}),
	}
}

func (c *DBCalendar) HolidaysFor(ctx context.Context, year int, region string) (map[string]struct{}, error) {
	key := calendarCacheKey(region, year)

	c.mu.RLock()
	set, ok := c.cache[key]
	c.mu.RUnlock()
	if ok {
		return set, nil
	}

	holidays, err := c.repo.ListByYearAndRegion(ctx, year, region)
	if err != nil {
		return nil, err
	}

	set = make(map[string]struct{}, len(holidays))
	for _, h := range holidays {
		set[holiday.DateKey(h.Date)] = struct{}{}
	}

	c.mu.Lock()
	c.cache[key] = set
	c.mu.Unlock()
	return set, nil
}

// Invalidate drops the cached set for one region and year.
func (c *DBCalendar) Invalidate(region string, year int) {
	c.mu.Lock()
	delete(c.cache, calendarCacheKey(region, year))
	c.mu.Unlock()
}

func calendarCacheKey(region string, year int) string {
	return fmt.Sprintf("%s-%d", region, year)
}
