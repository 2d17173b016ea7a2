package report

import (
	"strings"

	"github.com/YossiBuhnik/WorkLog1/internal/pkg/validator"
)

// ========================================
// EMPLOYEE REPORT
// ========================================

// EmployeeReportRequest selects the window and optionally overrides the
// configured policy.
type EmployeeReportRequest struct {
	Month           int     `json:"month"`
	Year            int     `json:"year"`
	VacationFilter  *string `json:"vacation_filter,omitempty"`
	MonthMembership *string `json:"month_membership,omitempty"`
	ClipToWindow    *bool   `json:"clip_to_window,omitempty"`
}

func (r *EmployeeReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 0 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12, or 0 for the full year",
		})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}
	if r.VacationFilter != nil && !validator.IsInSlice(*r.VacationFilter, []string{string(VacationApprovedOnly), string(VacationNonCancelled)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "vacation_filter",
			Message: "vacation_filter must be approved or non_cancelled",
		})
	}
	if r.MonthMembership != nil && !validator.IsInSlice(*r.MonthMembership, []string{string(MembershipOverlap), string(MembershipCreatedAt)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "month_membership",
			Message: "month_membership must be overlap or created_at",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Window returns the requested reporting window.
func (r *EmployeeReportRequest) Window() Window {
	return Window{Year: r.Year, Month: r.Month}
}

// ApplyTo overrides base with the options set on the request.
func (r *EmployeeReportRequest) ApplyTo(base Policy) Policy {
	p := base
	if r.VacationFilter != nil {
		p.VacationFilter = VacationFilter(*r.VacationFilter)
	}
	if r.MonthMembership != nil {
		p.MonthMembership = MonthMembership(*r.MonthMembership)
	}
	if r.ClipToWindow != nil {
		p.ClipToWindow = *r.ClipToWindow
	}
	return p
}

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
)

type ExportRequest struct {
	EmployeeReportRequest
	Format string `json:"format"`
}

func (r *ExportRequest) Validate() error {
	var errs validator.ValidationErrors
	if err := r.EmployeeReportRequest.Validate(); err != nil {
		errs = append(errs, err.(validator.ValidationErrors)...)
	}
	r.Format = strings.ToLower(strings.TrimSpace(r.Format))
	if r.Format == "" {
		r.Format = string(FormatCSV)
	}
	if !validator.IsInSlice(r.Format, []string{string(FormatCSV), string(FormatXLSX), string(FormatPDF)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "format",
			Message: "format must be csv, xlsx or pdf",
		})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ExportFile is a rendered report ready to be downloaded.
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}

// ========================================
// REPORT OUTPUT
// ========================================

// EmployeeVacationTally is the vacation workday total of one employee.
type EmployeeVacationTally struct {
	EmployeeID    string `json:"employee_id"`
	TotalWorkdays int    `json:"total_workdays"`
}

type Summary struct {
	TotalRequests     int `json:"total_requests"`
	ApprovedRequests  int `json:"approved_requests"`
	RejectedRequests  int `json:"rejected_requests"`
	PendingRequests   int `json:"pending_requests"`
	CancelledRequests int `json:"cancelled_requests"`
}

type TypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

type MonthCount struct {
	Month    string `json:"month"`
	Approved int    `json:"approved"`
	Rejected int    `json:"rejected"`
	Pending  int    `json:"pending"`
}

type ShiftCounts struct {
	Total    int `json:"total"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

// VacationDays are workday totals. Total follows the policy filter.
type VacationDays struct {
	Total    int `json:"total"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

type VacationBreakdown struct {
	RequestID string `json:"request_id"`
	Start     string `json:"start"`
	End       string `json:"end"`
	Status    string `json:"status"`
	Workdays  int    `json:"workdays"`
}

type EmployeeStats struct {
	EmployeeID        string              `json:"employee_id"`
	Name              string              `json:"name"`
	TotalRequests     int                 `json:"total_requests"`
	ExtraShifts       ShiftCounts         `json:"extra_shifts"`
	Vacations         VacationDays        `json:"vacations"`
	VacationBreakdown []VacationBreakdown `json:"vacation_breakdown"`
}

type EmployeeReport struct {
	Window          Window          `json:"window"`
	Title           string          `json:"title"`
	PeriodStart     string          `json:"period_start"`
	PeriodEnd       string          `json:"period_end"`
	Policy          Policy          `json:"policy"`
	Summary         Summary         `json:"summary"`
	RequestsByType  []TypeCount     `json:"requests_by_type"`
	RequestsByMonth []MonthCount    `json:"requests_by_month"`
	Employees       []EmployeeStats `json:"employees"`
	GeneratedAt     string          `json:"generated_at"`
}
