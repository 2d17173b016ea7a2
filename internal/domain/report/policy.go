package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/YossiBuhnik/WorkLog1/internal/domain/workday"
)

// VacationFilter selects which vacation requests make up an employee's
// vacation day total.
type VacationFilter string

const (
	VacationApprovedOnly VacationFilter = "approved"
	VacationNonCancelled VacationFilter = "non_cancelled"
)

// MonthMembership decides whether a request belongs to a reporting window.
type MonthMembership string

const (
	// MembershipOverlap includes requests whose date range touches the window.
	MembershipOverlap MonthMembership = "overlap"
	// MembershipCreatedAt includes requests created inside the window.
	MembershipCreatedAt MonthMembership = "created_at"
)

// Policy is the set of named options that shape a report.
type Policy struct {
	VacationFilter  VacationFilter  `json:"vacation_filter"`
	MonthMembership MonthMembership `json:"month_membership"`
	// ClipToWindow counts only the vacation days that fall inside the window.
	ClipToWindow bool `json:"clip_to_window"`
}

func DefaultPolicy() Policy {
	return Policy{
		VacationFilter:  VacationApprovedOnly,
		MonthMembership: MembershipOverlap,
		ClipToWindow:    true,
	}
}

func (p Policy) Validate() error {
	switch p.VacationFilter {
	case VacationApprovedOnly, VacationNonCancelled:
	default:
		return ErrInvalidVacationFilter
	}
	switch p.MonthMembership {
	case MembershipOverlap, MembershipCreatedAt:
	default:
		return ErrInvalidMonthMembership
	}
	return nil
}

// Window is a reporting period: one month of a year, or the full year when
// Month is 0.
type Window struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

func (w Window) IsFullYear() bool {
	return w.Month == 0
}

func (w Window) Validate() error {
	if w.Month < 0 || w.Month > 12 {
		return ErrInvalidMonth
	}
	if w.Year < 2000 || w.Year > 2100 {
		return ErrInvalidYear
	}
	return nil
}

// Range returns the window as whole days in loc.
func (w Window) Range(loc *time.Location) workday.DateRange {
	return workday.MonthRange(w.Year, time.Month(w.Month), loc)
}

// Label is the lower-case period name used in file names.
func (w Window) Label() string {
	if w.IsFullYear() {
		return "full-year"
	}
	return strings.ToLower(time.Month(w.Month).String())
}

// Title is the human readable period heading.
func (w Window) Title() string {
	if w.IsFullYear() {
		return fmt.Sprintf("Full Year %d", w.Year)
	}
	return fmt.Sprintf("%s %d", time.Month(w.Month), w.Year)
}
