package holiday

import "context"

type HolidayRepository interface {
	GetByID(ctx context.Context, id string) (Holiday, error)
	ListByYearAndRegion(ctx context.Context, year int, region string) ([]Holiday, error)
	Create(ctx context.Context, h Holiday) (Holiday, error)
	Delete(ctx context.Context, id string) error
}
