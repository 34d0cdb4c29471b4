package holiday

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ikaze-hr/leave-backend-go/internal/domain/holiday"
)

// CalendarInvalidator drops cached holiday sets after the underlying table
// changes.
type CalendarInvalidator interface {
	Invalidate(region string, year int)
}

type Service struct {
	holidays      holiday.HolidayRepository
	invalidator   CalendarInvalidator
	defaultRegion string
}

func NewService(holidays holiday.HolidayRepository, invalidator CalendarInvalidator, defaultRegion string) *Service {
	return &Service{
		holidays:      holidays,
		invalidator:   invalidator,
		defaultRegion: defaultRegion,
	}
}

func (s *Service) List(ctx context.Context, year int, region string) ([]holiday.Holiday, error) {
	if region == "" {
		region = s.defaultRegion
	}
	return s.holidays.ListByYearAndRegion(ctx, year, region)
}

func (s *Service) Create(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.Holiday, error) {
	if err := req.Validate(); err != nil {
		return holiday.Holiday{}, err
	}

	region := req.Region
	if region == "" {
		region = s.defaultRegion
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return holiday.Holiday{}, err
	}

	created, err := s.holidays.Create(ctx, holiday.Holiday{
		ID:     uuid.New().String(),
		Region: region,
		Date:   date,
		Name:   req.Name,
	})
	if err != nil {
		return holiday.Holiday{}, err
	}

	s.invalidator.Invalidate(region, date.Year())
	return created, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	existing, err := s.holidays.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.holidays.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidator.Invalidate(existing.Region, existing.Date.Year())
	return nil
}
