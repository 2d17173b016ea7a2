package report

import (
	"sort"
	"strings"
	"time"

	"github.com/YossiBuhnik/WorkLog1/internal/domain/request"
	"github.com/YossiBuhnik/WorkLog1/internal/domain/user"
	"github.com/YossiBuhnik/WorkLog1/internal/domain/workday"
)

// Aggregator turns already-fetched requests and users into report figures.
// It performs no I/O and holds no mutable state.
type Aggregator struct {
	accountant *workday.Accountant
	policy     Policy
}

func NewAggregator(accountant *workday.Accountant, policy Policy) *Aggregator {
	return &Aggregator{accountant: accountant, policy: policy}
}

func (a *Aggregator) Policy() Policy { return a.policy }

// Tally returns the vacation workday total of every employee for window.
// Requests without a start date contribute nothing.
func (a *Aggregator) Tally(requests []request.Request, users []user.User, window Window) []EmployeeVacationTally {
	byEmployee := a.groupInWindow(requests, window)

	var tallies []EmployeeVacationTally
	for _, u := range users {
		if !u.IsEmployee() {
			continue
		}
		days, _ := a.vacationDays(byEmployee[u.ID], window)
		tallies = append(tallies, EmployeeVacationTally{EmployeeID: u.ID, TotalWorkdays: days.Total})
	}
	return tallies
}

// Build produces the full employee report for window.
func (a *Aggregator) Build(requests []request.Request, users []user.User, window Window) EmployeeReport {
	loc := a.accountant.Location()
	bounds := window.Range(loc)

	inWindow := make([]request.Request, 0, len(requests))
	for _, r := range requests {
		if a.inWindow(r, bounds) {
			inWindow = append(inWindow, r)
		}
	}

	report := EmployeeReport{
		Window:          window,
		Title:           "Employee Statistics - " + window.Title(),
		PeriodStart:     bounds.Start.Format(workday.DateLayout),
		PeriodEnd:       bounds.End.Format(workday.DateLayout),
		Policy:          a.policy,
		Summary:         summarize(inWindow),
		RequestsByType:  countByType(inWindow),
		RequestsByMonth: countByMonth(inWindow, window.Year, loc),
		Employees:       a.employeeStats(inWindow, users, window),
	}
	return report
}

func (a *Aggregator) employeeStats(inWindow []request.Request, users []user.User, window Window) []EmployeeStats {
	byEmployee := make(map[string][]request.Request)
	for _, r := range inWindow {
		byEmployee[r.EmployeeID] = append(byEmployee[r.EmployeeID], r)
	}

	stats := make([]EmployeeStats, 0, len(users))
	for _, u := range users {
		if !u.IsEmployee() {
			continue
		}

		active := make([]request.Request, 0, len(byEmployee[u.ID]))
		for _, r := range byEmployee[u.ID] {
			if r.IsActive() {
				active = append(active, r)
			}
		}

		s := EmployeeStats{
			EmployeeID:    u.ID,
			Name:          u.DisplayName(),
			TotalRequests: len(active),
		}
		for _, r := range active {
			if r.Type != request.TypeExtraShift {
				continue
			}
			s.ExtraShifts.Total++
			switch r.Status {
			case request.StatusApproved:
				s.ExtraShifts.Approved++
			case request.StatusRejected:
				s.ExtraShifts.Rejected++
			}
		}
		s.Vacations, s.VacationBreakdown = a.vacationDays(active, window)
		stats = append(stats, s)
	}

	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].TotalRequests != stats[j].TotalRequests {
			return stats[i].TotalRequests > stats[j].TotalRequests
		}
		return strings.ToLower(stats[i].Name) < strings.ToLower(stats[j].Name)
	})
	return stats
}

// groupInWindow keeps the requests that belong to window, keyed by employee.
func (a *Aggregator) groupInWindow(requests []request.Request, window Window) map[string][]request.Request {
	bounds := window.Range(a.accountant.Location())
	grouped := make(map[string][]request.Request)
	for _, r := range requests {
		if a.inWindow(r, bounds) {
			grouped[r.EmployeeID] = append(grouped[r.EmployeeID], r)
		}
	}
	return grouped
}

func (a *Aggregator) inWindow(r request.Request, bounds workday.DateRange) bool {
	if a.policy.MonthMembership == MembershipCreatedAt {
		return bounds.Contains(r.CreatedAt)
	}
	if !r.HasStartDate() {
		return false
	}
	return a.accountant.Range(r.StartDate, r.LastDay()).Overlaps(bounds)
}

// vacationDays sums vacation workdays of one employee's requests. Total
// follows the policy filter; Approved and Rejected are always reported.
func (a *Aggregator) vacationDays(requests []request.Request, window Window) (VacationDays, []VacationBreakdown) {
	var clip *workday.DateRange
	if a.policy.ClipToWindow {
		bounds := window.Range(a.accountant.Location())
		clip = &bounds
	}

	var days VacationDays
	breakdown := []VacationBreakdown{}
	for _, r := range requests {
		if r.Type != request.TypeVacation || !r.HasStartDate() {
			continue
		}
		n := a.accountant.CountWorkdays(r.StartDate, r.LastDay(), clip)

		switch r.Status {
		case request.StatusApproved:
			days.Approved += n
		case request.StatusRejected:
			days.Rejected += n
		}
		if !a.countsTowardTotal(r.Status) {
			continue
		}
		days.Total += n
		breakdown = append(breakdown, VacationBreakdown{
			RequestID: r.ID,
			Start:     r.StartDate.In(a.accountant.Location()).Format(workday.DateLayout),
			End:       r.LastDay().In(a.accountant.Location()).Format(workday.DateLayout),
			Status:    string(r.Status),
			Workdays:  n,
		})
	}
	return days, breakdown
}

func (a *Aggregator) countsTowardTotal(s request.Status) bool {
	if a.policy.VacationFilter == VacationNonCancelled {
		return s != request.StatusCancelled
	}
	return s == request.StatusApproved
}

func summarize(requests []request.Request) Summary {
	var s Summary
	for _, r := range requests {
		switch r.Status {
		case request.StatusApproved:
			s.ApprovedRequests++
		case request.StatusRejected:
			s.RejectedRequests++
		case request.StatusPending:
			s.PendingRequests++
		case request.StatusCancelled:
			s.CancelledRequests++
		}
		if r.IsActive() {
			s.TotalRequests++
		}
	}
	return s
}

func countByType(requests []request.Request) []TypeCount {
	counts := []TypeCount{
		{Type: string(request.TypeVacation)},
		{Type: string(request.TypeExtraShift)},
	}
	for _, r := range requests {
		if !r.IsActive() {
			continue
		}
		for i := range counts {
			if counts[i].Type == string(r.Type) {
				counts[i].Count++
			}
		}
	}
	return counts
}

// countByMonth buckets requests of year by the month they were created in.
func countByMonth(requests []request.Request, year int, loc *time.Location) []MonthCount {
	months := make([]MonthCount, 12)
	for i := range months {
		months[i].Month = time.Month(i + 1).String()[:3]
	}
	for _, r := range requests {
		created := r.CreatedAt.In(loc)
		if created.Year() != year {
			continue
		}
		m := &months[created.Month()-1]
		switch r.Status {
		case request.StatusApproved:
			m.Approved++
		case request.StatusRejected:
			m.Rejected++
		case request.StatusPending:
			m.Pending++
		}
	}
	return months
}
