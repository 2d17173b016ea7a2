package workday_test

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/YossiBuhnik/WorkLog1/internal/domain/workday"
	"github.com/YossiBuhnik/WorkLog1/internal/fixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var israelSummer = time.FixedZone("IDT", 3*60*60)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.ParseInLocation(workday.DateLayout, s, israelSummer)
	require.NoError(t, err)
	return d
}

func newAccountant(holidays ...workday.Holiday) *workday.Accountant {
	return workday.NewAccountant(workday.NewHolidayCalendar(holidays...), workday.WithLocation(israelSummer))
}

func defaultAccountant() *workday.Accountant {
	return workday.NewAccountant(fixtures.GetDefaultCalendar(), workday.WithLocation(israelSummer))
}

func TestIsWorkday_WeekendIsNeverAWorkday(t *testing.T) {
	empty := newAccountant()
	full := defaultAccountant()

	start := date(t, "2024-01-01")
	end := date(t, "2026-12-31")
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Friday || d.Weekday() == time.Saturday {
			assert.False(t, empty.IsWorkday(d), "empty calendar, %s", d.Format(workday.DateLayout))
			assert.False(t, full.IsWorkday(d), "default calendar, %s", d.Format(workday.DateLayout))
		}
	}
}

func TestIsWorkday_UnlistedWeekdaysAreWorkdays(t *testing.T) {
	a := defaultAccountant()
	cal := a.Calendar()

	start := date(t, "2024-01-01")
	end := date(t, "2025-12-31")
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Friday || d.Weekday() == time.Saturday {
			continue
		}
		key := d.Format(workday.DateLayout)
		_, listed := cal.Name(key)
		assert.Equal(t, !listed, a.IsWorkday(d), key)
	}
}

func TestIsWorkday_HolidayAndMissingYear(t *testing.T) {
	a := defaultAccountant()

	assert.False(t, a.IsWorkday(date(t, "2025-09-23")), "Rosh Hashanah")
	assert.True(t, a.IsWorkday(date(t, "2025-09-22")))
	// No holidays configured for 2030: only the weekend rule applies.
	assert.True(t, a.IsWorkday(date(t, "2030-06-02")))
}

func TestIsWorkdayIn_ExplicitSet(t *testing.T) {
	a := newAccountant()
	set := workday.HolidaySet{"2025-06-03": {}}

	assert.False(t, a.IsWorkdayIn(date(t, "2025-06-03"), set))
	assert.True(t, a.IsWorkdayIn(date(t, "2025-06-04"), set))
	assert.True(t, a.IsWorkdayIn(date(t, "2025-06-04"), nil))

	assert.False(t, workday.IsWorkday(date(t, "2025-06-03"), set))
	assert.False(t, workday.IsWorkday(date(t, "2025-06-06"), nil), "Friday")
}

func TestIsWorkday_UsesLocalCalendarDay(t *testing.T) {
	a := newAccountant()
	// Thursday 22:30 UTC is already Friday 01:30 in Israel.
	instant := time.Date(2025, time.June, 5, 22, 30, 0, 0, time.UTC)

	assert.False(t, a.IsWorkday(instant))
	assert.True(t, workday.NewAccountant(workday.NewHolidayCalendar(), workday.WithLocation(time.UTC)).IsWorkday(instant))
}

func TestCountWorkdays_SingleDay(t *testing.T) {
	a := defaultAccountant()

	start := date(t, "2025-01-01")
	end := date(t, "2025-12-31")
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		want := 0
		if a.IsWorkday(d) {
			want = 1
		}
		assert.Equal(t, want, a.CountWorkdays(d, d, nil), d.Format(workday.DateLayout))
	}
}

func TestCountWorkdays_Examples(t *testing.T) {
	tests := []struct {
		name       string
		accountant *workday.Accountant
		start, end string
		want       int
	}{
		{"sunday to thursday without holidays", newAccountant(), "2025-06-01", "2025-06-05", 5},
		{"sunday to thursday with Shavuot", defaultAccountant(), "2025-06-01", "2025-06-05", 4},
		{"Rosh Hashanah", defaultAccountant(), "2025-09-23", "2025-09-24", 0},
		{"full weekend", defaultAccountant(), "2025-06-06", "2025-06-07", 0},
		{"two weeks", newAccountant(), "2025-06-01", "2025-06-14", 10},
		{"inverted range", newAccountant(), "2025-06-05", "2025-06-01", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.accountant.CountWorkdays(date(t, tt.start), date(t, tt.end), nil))
		})
	}
}

func TestCountWorkdays_NormalizesTimeOfDay(t *testing.T) {
	a := newAccountant()
	start := time.Date(2025, time.June, 1, 18, 45, 0, 0, israelSummer)
	end := time.Date(2025, time.June, 5, 0, 0, 1, 0, israelSummer)

	assert.Equal(t, 5, a.CountWorkdays(start, end, nil))
}

func TestCountWorkdays_ResolvesHolidaysPerDayYear(t *testing.T) {
	// 2024-12-29 is a Sunday; the range crosses into 2025.
	a := newAccountant(workday.Holiday{Date: "2025-01-01", Name: "Synthetic"})
	assert.Equal(t, 4, a.CountWorkdays(date(t, "2024-12-29"), date(t, "2025-01-02"), nil))

	b := newAccountant(workday.Holiday{Date: "2024-01-01", Name: "Synthetic"})
	assert.Equal(t, 5, b.CountWorkdays(date(t, "2024-12-29"), date(t, "2025-01-02"), nil))
}

func TestCountWorkdays_Clip(t *testing.T) {
	a := newAccountant()
	start, end := date(t, "2025-06-01"), date(t, "2025-06-12")

	t.Run("clip outside the range", func(t *testing.T) {
		clip := workday.NewDateRange(date(t, "2025-07-01"), date(t, "2025-07-31"), israelSummer)
		assert.Equal(t, 0, a.CountWorkdays(start, end, &clip))

		before := workday.NewDateRange(date(t, "2025-05-01"), date(t, "2025-05-31"), israelSummer)
		assert.Equal(t, 0, a.CountWorkdays(start, end, &before))
	})

	t.Run("clip covering part of the range", func(t *testing.T) {
		clip := workday.NewDateRange(date(t, "2025-06-08"), date(t, "2025-06-30"), israelSummer)
		// 8..12 June: Sunday through Thursday.
		assert.Equal(t, 5, a.CountWorkdays(start, end, &clip))
	})

	t.Run("clip covering the whole range", func(t *testing.T) {
		clip := workday.MonthRange(2025, time.June, israelSummer)
		assert.Equal(t, a.CountWorkdays(start, end, nil), a.CountWorkdays(start, end, &clip))
	})

	t.Run("request spanning two months attributed per month", func(t *testing.T) {
		reqStart, reqEnd := date(t, "2025-06-29"), date(t, "2025-07-03")
		june := workday.MonthRange(2025, time.June, israelSummer)
		july := workday.MonthRange(2025, time.July, israelSummer)

		total := a.CountWorkdays(reqStart, reqEnd, nil)
		assert.Equal(t, 5, total)
		assert.Equal(t, total, a.CountWorkdays(reqStart, reqEnd, &june)+a.CountWorkdays(reqStart, reqEnd, &july))
	})
}

func TestCountWorkdays_Monotonic(t *testing.T) {
	a := defaultAccountant()
	start := date(t, "2025-01-01")

	prev := a.CountWorkdays(start, start, nil)
	for end := start.AddDate(0, 0, 1); end.Year() == 2025; end = end.AddDate(0, 0, 1) {
		got := a.CountWorkdays(start, end, nil)
		diff := got - prev
		require.True(t, diff == 0 || diff == 1, "extending to %s changed count by %d", end.Format(workday.DateLayout), diff)
		assert.Equal(t, a.IsWorkday(end), diff == 1)
		prev = got
	}
}

func TestCountWorkdays_Idempotent(t *testing.T) {
	a := defaultAccountant()
	start, end := date(t, "2024-03-01"), date(t, "2025-11-30")
	clip := workday.MonthRange(2025, time.October, israelSummer)

	first := a.CountWorkdays(start, end, &clip)
	_ = a.CountWorkdays(date(t, "2025-01-01"), date(t, "2025-01-31"), nil)
	assert.Equal(t, first, a.CountWorkdays(start, end, &clip))
}

func TestCountWorkdays_ConcurrentUse(t *testing.T) {
	a := defaultAccountant()
	start, end := date(t, "2025-01-01"), date(t, "2025-12-31")
	want := a.CountWorkdays(start, end, nil)

	var wg sync.WaitGroup
	results := make([]int, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = a.CountWorkdays(start, end, nil)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestWithEves(t *testing.T) {
	base := fixtures.GetDefaultCalendar()
	eves := workday.WithEves(base)

	assert.True(t, eves.ForYear(2025).Contains("2025-06-01"), "eve of Shavuot")
	assert.True(t, eves.ForYear(2025).Contains("2025-06-02"), "original kept")
	assert.False(t, base.ForYear(2025).Contains("2025-06-01"), "base calendar untouched")

	name, ok := eves.Name("2025-06-01")
	require.True(t, ok)
	assert.Equal(t, "Eve of Shavuot", name)

	// Consecutive holidays: the eve of the second day is the first day.
	name, ok = eves.Name("2025-09-23")
	require.True(t, ok)
	assert.Equal(t, "Rosh Hashanah 1", name)

	a := workday.NewAccountant(eves, workday.WithLocation(israelSummer))
	assert.Equal(t, 3, a.CountWorkdays(date(t, "2025-06-01"), date(t, "2025-06-05"), nil))
}

func TestWithEves_YearBoundary(t *testing.T) {
	base := workday.NewHolidayCalendar(workday.Holiday{Date: "2026-01-01", Name: "New Year"})
	eves := workday.WithEves(base)

	assert.True(t, eves.ForYear(2025).Contains("2025-12-31"))
	assert.False(t, eves.ForYear(2026).Contains("2025-12-31"))
	assert.Equal(t, []int{2025, 2026}, eves.Years())
}

func TestWithEves_NoDoubleCounting(t *testing.T) {
	base := workday.NewHolidayCalendar(
		workday.Holiday{Date: "2025-06-03", Name: "A"},
		workday.Holiday{Date: "2025-06-04", Name: "B"},
	)
	eves := workday.WithEves(base)

	assert.Equal(t, 3, eves.Len())
	assert.Len(t, eves.Holidays(2025), 3)
}

func TestHolidayCalendar_MergeAndList(t *testing.T) {
	base := workday.NewHolidayCalendar(workday.Holiday{Date: "2025-06-02", Name: "Shavuot"})
	extra := workday.NewHolidayCalendar(
		workday.Holiday{Date: "2025-06-02", Name: "Duplicate"},
		workday.Holiday{Date: "2027-05-11", Name: "Company day"},
		workday.Holiday{Date: "not-a-date", Name: "Ignored"},
	)

	merged := base.Merge(extra)
	assert.Equal(t, 2, merged.Len())
	assert.Equal(t, []workday.Holiday{{Date: "2025-06-02", Name: "Shavuot"}}, merged.Holidays(2025))
	assert.Equal(t, []int{2025, 2027}, merged.Years())
	assert.Empty(t, merged.ForYear(2026))
}

func TestDays(t *testing.T) {
	a := defaultAccountant()
	days := a.Days(date(t, "2025-05-31"), date(t, "2025-06-02"))

	require.Len(t, days, 3)
	assert.Equal(t, workday.Day{Date: "2025-05-31", Weekday: "Saturday", Workday: false}, days[0])
	assert.Equal(t, workday.Day{Date: "2025-06-01", Weekday: "Sunday", Workday: true}, days[1])
	assert.Equal(t, workday.Day{Date: "2025-06-02", Weekday: "Monday", Workday: false, Holiday: "Shavuot"}, days[2])
}

func TestNewDateRange(t *testing.T) {
	r := workday.NewDateRange(
		time.Date(2025, time.June, 1, 15, 4, 5, 0, israelSummer),
		time.Date(2025, time.June, 3, 1, 0, 0, 0, israelSummer),
		israelSummer,
	)

	assert.Equal(t, time.Date(2025, time.June, 1, 0, 0, 0, 0, israelSummer), r.Start)
	assert.Equal(t, time.Date(2025, time.June, 3, 23, 59, 59, int(999*time.Millisecond), israelSummer), r.End)
	assert.True(t, r.Contains(time.Date(2025, time.June, 3, 23, 0, 0, 0, israelSummer)))

	year := workday.MonthRange(2025, 0, israelSummer)
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, israelSummer), year.Start)
	assert.Equal(t, 31, year.End.Day())
	assert.True(t, year.Overlaps(r))
}

func TestParseCalendar(t *testing.T) {
	doc := `
holidays:
  - date: "2026-04-02"
    name: Pesach 1
  - date: 2026-05-22
    name: Shavuot
`
	cal, err := workday.ParseCalendar(strings.NewReader(doc))
	require.NoError(t, err)
	assert.True(t, cal.ForYear(2026).Contains("2026-04-02"))
	assert.True(t, cal.ForYear(2026).Contains("2026-05-22"))

	_, err = workday.ParseCalendar(strings.NewReader("holidays:\n  - date: 22/05/2026\n    name: Bad\n"))
	assert.ErrorIs(t, err, workday.ErrInvalidCalendarEntry)

	empty, err := workday.ParseCalendar(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())
}
