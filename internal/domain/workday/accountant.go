package workday

import (
	"time"

	cal "github.com/rickar/cal/v2"
)

// workWeek holds the Sunday through Thursday work week. Friday and
// Saturday are the weekend.
var workWeek = newWorkWeek()

func newWorkWeek() *cal.BusinessCalendar {
	c := cal.NewBusinessCalendar()
	c.SetWorkday(time.Sunday, true)
	c.SetWorkday(time.Monday, true)
	c.SetWorkday(time.Tuesday, true)
	c.SetWorkday(time.Wednesday, true)
	c.SetWorkday(time.Thursday, true)
	c.SetWorkday(time.Friday, false)
	c.SetWorkday(time.Saturday, false)
	return c
}

// civil strips t down to its calendar day in loc, returned at UTC midnight
// so that day arithmetic is free of DST transitions.
func civil(t time.Time, loc *time.Location) time.Time {
	l := t.In(loc)
	return time.Date(l.Year(), l.Month(), l.Day(), 0, 0, 0, 0, time.UTC)
}

func isWorkdayCivil(day time.Time, isHoliday func(year int, key string) bool) bool {
	if !workWeek.IsWorkday(day) {
		return false
	}
	return !isHoliday(day.Year(), day.Format(DateLayout))
}

// IsWorkday reports whether date, read as a calendar day in its own
// location, is a workday given the holiday set of that day's year.
func IsWorkday(date time.Time, holidaysForYear HolidaySet) bool {
	return isWorkdayCivil(civil(date, date.Location()), func(_ int, key string) bool {
		return holidaysForYear.Contains(key)
	})
}

// Accountant counts workdays against a fixed holiday calendar. All dates
// are interpreted as calendar days in the accountant's location.
// An Accountant is immutable and safe for concurrent use.
type Accountant struct {
	calendar HolidayCalendar
	loc      *time.Location
}

type Option func(*Accountant)

// WithLocation sets the location used to resolve calendar days.
func WithLocation(loc *time.Location) Option {
	return func(a *Accountant) {
		if loc != nil {
			a.loc = loc
		}
	}
}

func NewAccountant(calendar HolidayCalendar, opts ...Option) *Accountant {
	a := &Accountant{calendar: calendar, loc: time.Local}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Accountant) Calendar() HolidayCalendar { return a.calendar }

func (a *Accountant) Location() *time.Location { return a.loc }

// Range normalizes start and end to whole days in the accountant location.
func (a *Accountant) Range(start, end time.Time) DateRange {
	return NewDateRange(start, end, a.loc)
}

// IsWorkday reports whether date is a workday under the bound calendar.
func (a *Accountant) IsWorkday(date time.Time) bool {
	return isWorkdayCivil(civil(date, a.loc), a.calendar.contains)
}

// IsWorkdayIn checks date against an explicit holiday set instead of the
// bound calendar.
func (a *Accountant) IsWorkdayIn(date time.Time, holidaysForYear HolidaySet) bool {
	return isWorkdayCivil(civil(date, a.loc), func(_ int, key string) bool {
		return holidaysForYear.Contains(key)
	})
}

// CountWorkdays counts the workdays in the inclusive range [start, end].
// When clip is non-nil only days that also fall inside the clip window are
// counted. Holidays are looked up by each day's own year. An inverted
// range counts as zero.
func (a *Accountant) CountWorkdays(start, end time.Time, clip *DateRange) int {
	from, to := civil(start, a.loc), civil(end, a.loc)
	if clip != nil {
		clipFrom, clipTo := civil(clip.Start, a.loc), civil(clip.End, a.loc)
		if clipFrom.After(from) {
			from = clipFrom
		}
		if clipTo.Before(to) {
			to = clipTo
		}
	}

	count := 0
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		if isWorkdayCivil(day, a.calendar.contains) {
			count++
		}
	}
	return count
}

// Count is CountWorkdays over a DateRange.
func (a *Accountant) Count(r DateRange, clip *DateRange) int {
	return a.CountWorkdays(r.Start, r.End, clip)
}

// Days lists every calendar day of the inclusive range with its status.
func (a *Accountant) Days(start, end time.Time) []Day {
	from, to := civil(start, a.loc), civil(end, a.loc)
	var days []Day
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		key := day.Format(DateLayout)
		name, _ := a.calendar.Name(key)
		days = append(days, Day{
			Date:    key,
			Weekday: day.Weekday().String(),
			Workday: isWorkdayCivil(day, a.calendar.contains),
			Holiday: name,
		})
	}
	return days
}
