package workday

import (
	"strings"

	"github.com/YossiBuhnik/WorkLog1/internal/pkg/validator"
)

type CountWorkdaysRequest struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	ClipStart string `json:"clip_start,omitempty"`
	ClipEnd   string `json:"clip_end,omitempty"`
}

func (r *CountWorkdaysRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Start) {
		errs = append(errs, validator.ValidationError{Field: "start", Message: "start is required"})
	} else if !isDate(r.Start) {
		errs = append(errs, validator.ValidationError{Field: "start", Message: "start must be in YYYY-MM-DD format"})
	}

	if validator.IsEmpty(r.End) {
		r.End = r.Start
	} else if !isDate(r.End) {
		errs = append(errs, validator.ValidationError{Field: "end", Message: "end must be in YYYY-MM-DD format"})
	}

	if validator.IsEmpty(r.ClipStart) != validator.IsEmpty(r.ClipEnd) {
		errs = append(errs, validator.ValidationError{Field: "clip", Message: "clip_start and clip_end must be given together"})
	}
	if !validator.IsEmpty(r.ClipStart) && !isDate(r.ClipStart) {
		errs = append(errs, validator.ValidationError{Field: "clip_start", Message: "clip_start must be in YYYY-MM-DD format"})
	}
	if !validator.IsEmpty(r.ClipEnd) && !isDate(r.ClipEnd) {
		errs = append(errs, validator.ValidationError{Field: "clip_end", Message: "clip_end must be in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CountWorkdaysResponse struct {
	Start    string `json:"start"`
	End      string `json:"end"`
	Workdays int    `json:"workdays"`
	Days     []Day  `json:"days"`
}

type CreateHolidayRequest struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Name = strings.TrimSpace(r.Name)
	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date is required"})
	} else if !isDate(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	} else if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not exceed 100 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type HolidayListResponse struct {
	Year     int       `json:"year"`
	Holidays []Holiday `json:"holidays"`
}

func isDate(s string) bool {
	_, ok := validator.IsValidDate(s)
	return ok
}
