package workday

import (
	"sort"
	"time"
)

// DateLayout is the canonical key format for calendar days.
const DateLayout = "2006-01-02"

// Holiday is a named non-workday.
type Holiday struct {
	ID        string    `json:"id,omitempty"`
	Date      string    `json:"date" yaml:"date"`
	Name      string    `json:"name" yaml:"name"`
	CreatedAt time.Time `json:"created_at,omitempty" yaml:"-"`
}

// Year returns the year of the holiday date, or 0 when the date is malformed.
func (h Holiday) Year() int {
	d, err := ParseDate(h.Date)
	if err != nil {
		return 0
	}
	return d.Year()
}

// HolidaySet is the set of YYYY-MM-DD keys configured for one year.
type HolidaySet map[string]struct{}

// Contains reports whether key is in the set. A nil set is empty.
func (s HolidaySet) Contains(key string) bool {
	_, ok := s[key]
	return ok
}

// HolidayCalendar maps a year to its holiday dates and their names.
// A calendar is never mutated after construction.
type HolidayCalendar struct {
	years map[int]map[string]string
}

// NewHolidayCalendar builds a calendar from a list of holidays, bucketing
// each by its own year. Entries with malformed dates are ignored and
// duplicates collapse to one entry (the first name wins).
func NewHolidayCalendar(holidays ...Holiday) HolidayCalendar {
	c := HolidayCalendar{years: make(map[int]map[string]string)}
	for _, h := range holidays {
		d, err := ParseDate(h.Date)
		if err != nil {
			continue
		}
		c.add(d, h.Name)
	}
	return c
}

func (c HolidayCalendar) add(day time.Time, name string) {
	bucket, ok := c.years[day.Year()]
	if !ok {
		bucket = make(map[string]string)
		c.years[day.Year()] = bucket
	}
	key := day.Format(DateLayout)
	if _, exists := bucket[key]; !exists {
		bucket[key] = name
	}
}

func (c HolidayCalendar) contains(year int, key string) bool {
	_, ok := c.years[year][key]
	return ok
}

// ForYear returns a copy of the holiday set for year. Years without
// entries yield an empty set.
func (c HolidayCalendar) ForYear(year int) HolidaySet {
	set := make(HolidaySet, len(c.years[year]))
	for key := range c.years[year] {
		set[key] = struct{}{}
	}
	return set
}

// Name returns the holiday name configured for a YYYY-MM-DD key.
func (c HolidayCalendar) Name(key string) (string, bool) {
	d, err := ParseDate(key)
	if err != nil {
		return "", false
	}
	name, ok := c.years[d.Year()][key]
	return name, ok
}

// Years returns the configured years in ascending order.
func (c HolidayCalendar) Years() []int {
	years := make([]int, 0, len(c.years))
	for y, bucket := range c.years {
		if len(bucket) > 0 {
			years = append(years, y)
		}
	}
	sort.Ints(years)
	return years
}

// Holidays lists the holidays of one year ordered by date.
func (c HolidayCalendar) Holidays(year int) []Holiday {
	bucket := c.years[year]
	list := make([]Holiday, 0, len(bucket))
	for key, name := range bucket {
		list = append(list, Holiday{Date: key, Name: name})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Date < list[j].Date })
	return list
}

// Len is the total number of configured dates across all years.
func (c HolidayCalendar) Len() int {
	n := 0
	for _, bucket := range c.years {
		n += len(bucket)
	}
	return n
}

// Merge returns a new calendar holding the union of c and other.
// Names from c take precedence.
func (c HolidayCalendar) Merge(other HolidayCalendar) HolidayCalendar {
	merged := HolidayCalendar{years: make(map[int]map[string]string)}
	for _, src := range []HolidayCalendar{c, other} {
		for _, bucket := range src.years {
			for key, name := range bucket {
				d, _ := ParseDate(key)
				merged.add(d, name)
			}
		}
	}
	return merged
}

// WithEves derives a calendar where the day before every holiday is also a
// non-workday. Each eve is bucketed by its own year, so the eve of a
// January 1st holiday lands in the previous year. Original dates are kept.
func WithEves(base HolidayCalendar) HolidayCalendar {
	extended := HolidayCalendar{years: make(map[int]map[string]string)}
	for _, bucket := range base.years {
		for key, name := range bucket {
			d, _ := ParseDate(key)
			extended.add(d, name)
		}
	}
	for _, bucket := range base.years {
		for key, name := range bucket {
			d, _ := ParseDate(key)
			extended.add(d.AddDate(0, 0, -1), "Eve of "+name)
		}
	}
	return extended
}

// DateRange is an inclusive range of calendar days. Start is normalized to
// local midnight and End to the last millisecond of its day.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewDateRange normalizes start and end to whole days in loc.
func NewDateRange(start, end time.Time, loc *time.Location) DateRange {
	if loc == nil {
		loc = time.Local
	}
	s := start.In(loc)
	e := end.In(loc)
	return DateRange{
		Start: time.Date(s.Year(), s.Month(), s.Day(), 0, 0, 0, 0, loc),
		End:   time.Date(e.Year(), e.Month(), e.Day(), 23, 59, 59, int(999*time.Millisecond), loc),
	}
}

// MonthRange returns the whole month in loc. Month 0 means the full year.
func MonthRange(year int, month time.Month, loc *time.Location) DateRange {
	if loc == nil {
		loc = time.Local
	}
	if month == 0 {
		return NewDateRange(
			time.Date(year, time.January, 1, 0, 0, 0, 0, loc),
			time.Date(year, time.December, 31, 0, 0, 0, 0, loc),
			loc,
		)
	}
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return NewDateRange(first, first.AddDate(0, 1, -1), loc)
}

// Overlaps reports whether the two ranges share at least one instant.
func (r DateRange) Overlaps(other DateRange) bool {
	return !r.Start.After(other.End) && !other.Start.After(r.End)
}

// Contains reports whether t falls within the range.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// Day describes a single calendar day of a range.
type Day struct {
	Date    string `json:"date"`
	Weekday string `json:"weekday"`
	Workday bool   `json:"workday"`
	Holiday string `json:"holiday,omitempty"`
}

// ParseDate parses a YYYY-MM-DD string into a civil date at UTC midnight.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
