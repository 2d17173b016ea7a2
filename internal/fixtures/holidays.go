package fixtures

import "github.com/YossiBuhnik/WorkLog1/internal/domain/workday"

// ==========================================
// DEFAULT HOLIDAY CALENDAR
// ==========================================

// GetDefaultHolidays returns the built-in holiday table used when no
// calendar file is configured.
func GetDefaultHolidays() []workday.Holiday {
	return []workday.Holiday{
		// 2024
		{Date: "2024-04-23", Name: "Pesach 1"},
		{Date: "2024-04-24", Name: "Pesach 2"},
		{Date: "2024-04-29", Name: "Pesach 7"},
		{Date: "2024-04-30", Name: "Pesach 8"},
		{Date: "2024-06-12", Name: "Shavuot"},
		{Date: "2024-10-03", Name: "Rosh Hashanah 1"},
		{Date: "2024-10-04", Name: "Rosh Hashanah 2"},
		{Date: "2024-10-12", Name: "Yom Kippur"},
		{Date: "2024-10-17", Name: "Sukkot 1"},
		{Date: "2024-10-18", Name: "Sukkot 2"},
		{Date: "2024-10-24", Name: "Shemini Atzeret"},
		{Date: "2024-10-25", Name: "Simchat Torah"},

		// 2025
		{Date: "2025-04-13", Name: "Pesach 1"},
		{Date: "2025-04-14", Name: "Pesach 2"},
		{Date: "2025-04-19", Name: "Pesach 7"},
		{Date: "2025-04-20", Name: "Pesach 8"},
		{Date: "2025-06-02", Name: "Shavuot"},
		{Date: "2025-09-23", Name: "Rosh Hashanah 1"},
		{Date: "2025-09-24", Name: "Rosh Hashanah 2"},
		{Date: "2025-10-02", Name: "Yom Kippur"},
		{Date: "2025-10-07", Name: "Sukkot 1"},
		{Date: "2025-10-08", Name: "Sukkot 2"},
		{Date: "2025-10-14", Name: "Shemini Atzeret"},
		{Date: "2025-10-15", Name: "Simchat Torah"},
	}
}

// GetDefaultCalendar returns the built-in holiday table as a calendar.
func GetDefaultCalendar() workday.HolidayCalendar {
	return workday.NewHolidayCalendar(GetDefaultHolidays()...)
}
