package workday

import "context"

type HolidayRepository interface {
	ListByYear(ctx context.Context, year int) ([]Holiday, error)
	ListAll(ctx context.Context) ([]Holiday, error)
	GetByID(ctx context.Context, id string) (Holiday, error)
	Create(ctx context.Context, holiday Holiday) (Holiday, error)
	Delete(ctx context.Context, id string) error
}
