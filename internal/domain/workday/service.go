package workday

import (
	"context"
	"time"
)

type Service interface {
	// Accountant returns an accountant over the effective holiday calendar.
	// Every call builds a fresh snapshot.
	Accountant(ctx context.Context) (*Accountant, error)
	CountWorkdays(ctx context.Context, req CountWorkdaysRequest) (CountWorkdaysResponse, error)
	ListHolidays(ctx context.Context, year int) (HolidayListResponse, error)
	CreateHoliday(ctx context.Context, req CreateHolidayRequest) (Holiday, error)
	DeleteHoliday(ctx context.Context, id string) error
	Location() *time.Location
}
