package request

import (
	"strings"
	"time"

	"github.com/YossiBuhnik/WorkLog1/internal/pkg/validator"
)

// Viewer identifies who is reading a request.
type Viewer struct {
	UserID     string
	CanViewAll bool
}

type CreateRequestRequest struct {
	Type        string  `json:"type"`
	StartDate   string  `json:"start_date"`
	EndDate     *string `json:"end_date,omitempty"`
	ProjectName *string `json:"project_name,omitempty"`
	Notes       *string `json:"notes,omitempty"`
	ManagerID   *string `json:"manager_id,omitempty"`
}

func (r *CreateRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Type) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "type is required"})
	} else if !Type(r.Type).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "type must be vacation or extra_shift"})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date is required"})
	} else if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be in YYYY-MM-DD format"})
	}

	if r.EndDate != nil && validator.IsEmpty(*r.EndDate) {
		r.EndDate = nil
	}
	if r.EndDate != nil {
		if Type(r.Type) == TypeExtraShift {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "extra shifts are single-day requests"})
		} else if end, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be in YYYY-MM-DD format"})
		} else if startOK && end.Before(start) {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must not be before start_date"})
		}
	}

	if r.ProjectName != nil {
		name := strings.TrimSpace(*r.ProjectName)
		r.ProjectName = &name
	}
	if Type(r.Type) == TypeExtraShift && (r.ProjectName == nil || *r.ProjectName == "") {
		errs = append(errs, validator.ValidationError{Field: "project_name", Message: "project_name is required for extra shifts"})
	}

	if r.Notes != nil && len(*r.Notes) > 1000 {
		errs = append(errs, validator.ValidationError{Field: "notes", Message: "notes must not exceed 1000 characters"})
	}

	if r.ManagerID != nil && !validator.IsValidUUID(*r.ManagerID) {
		errs = append(errs, validator.ValidationError{Field: "manager_id", Message: "manager_id must be a valid UUID"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RequestResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	ManagerID    string  `json:"manager_id"`
	Type         string  `json:"type"`
	Status       string  `json:"status"`
	StartDate    string  `json:"start_date"`
	EndDate      *string `json:"end_date,omitempty"`
	ProjectName  *string `json:"project_name,omitempty"`
	Notes        *string `json:"notes,omitempty"`
	ApprovedBy   *string `json:"approved_by,omitempty"`
	DecidedAt    *string `json:"decided_at,omitempty"`
	Workdays     *int    `json:"workdays,omitempty"`
	CanCancel    bool    `json:"can_cancel"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

// ListRequestsFilter narrows request listings. From/To select requests
// whose date range overlaps the given days.
type ListRequestsFilter struct {
	EmployeeID *string
	ManagerID  *string
	Status     *string
	Type       *string
	From       *string
	To         *string
	Page       int
	Limit      int

	FromDate *time.Time
	ToDate   *time.Time
}

func (f *ListRequestsFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
	if f.Status != nil && !Status(*f.Status).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "invalid status"})
	}
	if f.Type != nil && !Type(*f.Type).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "invalid type"})
	}
	if f.From != nil {
		if d, ok := validator.IsValidDate(*f.From); ok {
			f.FromDate = &d
		} else {
			errs = append(errs, validator.ValidationError{Field: "from", Message: "from must be in YYYY-MM-DD format"})
		}
	}
	if f.To != nil {
		if d, ok := validator.IsValidDate(*f.To); ok {
			f.ToDate = &d
		} else {
			errs = append(errs, validator.ValidationError{Field: "to", Message: "to must be in YYYY-MM-DD format"})
		}
	}
	if f.FromDate != nil && f.ToDate != nil && f.ToDate.Before(*f.FromDate) {
		errs = append(errs, validator.ValidationError{Field: "to", Message: "to must not be before from"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListRequestsResponse struct {
	Requests   []RequestResponse `json:"requests"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
}

// ScheduleRequest selects the month of a manager schedule.
type ScheduleRequest struct {
	Month int
	Year  int
}

func (r *ScheduleRequest) Validate() error {
	var errs validator.ValidationErrors
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be between 1 and 12"})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "year must be between 2000 and 2100"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ScheduleResponse struct {
	Year     int               `json:"year"`
	Month    int               `json:"month"`
	Requests []RequestResponse `json:"requests"`
}
