package workday

import (
	"context"
	"fmt"
	"time"

	"github.com/YossiBuhnik/WorkLog1/internal/config"
	"github.com/YossiBuhnik/WorkLog1/internal/domain/workday"
	"github.com/YossiBuhnik/WorkLog1/internal/fixtures"
	"github.com/google/uuid"
)

const maxBreakdownDays = 366

type WorkdayServiceImpl struct {
	holidayRepo workday.HolidayRepository
	base        workday.HolidayCalendar
	includeEves bool
	loc         *time.Location
}

// NewWorkdayService builds the service over a configured base calendar.
// holidayRepo may be nil, in which case only the base calendar is used.
func NewWorkdayService(holidayRepo workday.HolidayRepository, base workday.HolidayCalendar, includeEves bool, loc *time.Location) workday.Service {
	if loc == nil {
		loc = time.Local
	}
	return &WorkdayServiceImpl{
		holidayRepo: holidayRepo,
		base:        base,
		includeEves: includeEves,
		loc:         loc,
	}
}

// LoadBaseCalendar reads the configured holiday file, falling back to the
// built-in table.
func LoadBaseCalendar(cfg config.CalendarConfig) (workday.HolidayCalendar, error) {
	if cfg.File == "" {
		return fixtures.GetDefaultCalendar(), nil
	}
	cal, err := workday.LoadCalendarFile(cfg.File)
	if err != nil {
		return workday.HolidayCalendar{}, err
	}
	return cal, nil
}

func (s *WorkdayServiceImpl) Location() *time.Location {
	return s.loc
}

// calendar merges the base table with office-managed holidays.
func (s *WorkdayServiceImpl) calendar(ctx context.Context) (workday.HolidayCalendar, []workday.Holiday, error) {
	if s.holidayRepo == nil {
		return s.base, nil, nil
	}
	stored, err := s.holidayRepo.ListAll(ctx)
	if err != nil {
		return workday.HolidayCalendar{}, nil, fmt.Errorf("failed to load holidays: %w", err)
	}
	return s.base.Merge(workday.NewHolidayCalendar(stored...)), stored, nil
}

// Accountant implements workday.Service.
func (s *WorkdayServiceImpl) Accountant(ctx context.Context) (*workday.Accountant, error) {
	cal, _, err := s.calendar(ctx)
	if err != nil {
		return nil, err
	}
	if s.includeEves {
		cal = workday.WithEves(cal)
	}
	return workday.NewAccountant(cal, workday.WithLocation(s.loc)), nil
}

// CountWorkdays implements workday.Service.
func (s *WorkdayServiceImpl) CountWorkdays(ctx context.Context, req workday.CountWorkdaysRequest) (workday.CountWorkdaysResponse, error) {
	if err := req.Validate(); err != nil {
		return workday.CountWorkdaysResponse{}, err
	}

	start, _ := time.ParseInLocation(workday.DateLayout, req.Start, s.loc)
	end, _ := time.ParseInLocation(workday.DateLayout, req.End, s.loc)
	if end.Before(start) {
		return workday.CountWorkdaysResponse{}, workday.ErrInvalidDateRange
	}
	// Rounding absorbs a DST shift inside the range; both ends count.
	if days := int(end.Sub(start).Round(24*time.Hour)/(24*time.Hour)) + 1; days > maxBreakdownDays {
		return workday.CountWorkdaysResponse{}, workday.ErrDateRangeTooLong
	}

	var clip *workday.DateRange
	if req.ClipStart != "" {
		clipStart, _ := time.ParseInLocation(workday.DateLayout, req.ClipStart, s.loc)
		clipEnd, _ := time.ParseInLocation(workday.DateLayout, req.ClipEnd, s.loc)
		r := workday.NewDateRange(clipStart, clipEnd, s.loc)
		clip = &r
	}

	acc, err := s.Accountant(ctx)
	if err != nil {
		return workday.CountWorkdaysResponse{}, err
	}

	return workday.CountWorkdaysResponse{
		Start:    req.Start,
		End:      req.End,
		Workdays: acc.CountWorkdays(start, end, clip),
		Days:     acc.Days(start, end),
	}, nil
}

// ListHolidays implements workday.Service.
func (s *WorkdayServiceImpl) ListHolidays(ctx context.Context, year int) (workday.HolidayListResponse, error) {
	cal, stored, err := s.calendar(ctx)
	if err != nil {
		return workday.HolidayListResponse{}, err
	}
	if s.includeEves {
		cal = workday.WithEves(cal)
	}

	ids := make(map[string]string, len(stored))
	for _, h := range stored {
		ids[h.Date] = h.ID
	}

	holidays := cal.Holidays(year)
	for i := range holidays {
		holidays[i].ID = ids[holidays[i].Date]
	}

	return workday.HolidayListResponse{Year: year, Holidays: holidays}, nil
}

// CreateHoliday implements workday.Service.
func (s *WorkdayServiceImpl) CreateHoliday(ctx context.Context, req workday.CreateHolidayRequest) (workday.Holiday, error) {
	if err := req.Validate(); err != nil {
		return workday.Holiday{}, err
	}
	if s.holidayRepo == nil {
		return workday.Holiday{}, fmt.Errorf("holiday storage is disabled")
	}

	cal, _, err := s.calendar(ctx)
	if err != nil {
		return workday.Holiday{}, err
	}
	if _, exists := cal.Name(req.Date); exists {
		return workday.Holiday{}, workday.ErrHolidayExists
	}

	return s.holidayRepo.Create(ctx, workday.Holiday{
		ID:   uuid.New().String(),
		Date: req.Date,
		Name: req.Name,
	})
}

// DeleteHoliday implements workday.Service.
func (s *WorkdayServiceImpl) DeleteHoliday(ctx context.Context, id string) error {
	if s.holidayRepo == nil {
		return workday.ErrHolidayNotFound
	}
	if _, err := s.holidayRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.holidayRepo.Delete(ctx, id)
}
