package workday

import "errors"

var (
	ErrHolidayNotFound      = errors.New("holiday not found")
	ErrHolidayExists        = errors.New("holiday already configured for this date")
	ErrInvalidDateRange     = errors.New("end date must not be before start date")
	ErrDateRangeTooLong     = errors.New("date range must not exceed 366 days")
	ErrInvalidCalendarEntry = errors.New("invalid holiday calendar entry")
)
