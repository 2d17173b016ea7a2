package http

import (
	"net/http"
	"strconv"

	"github.com/YossiBuhnik/WorkLog1/internal/domain/report"
	"github.com/YossiBuhnik/WorkLog1/internal/handler/http/response"
)

type ReportHandler interface {
	// Employee statistics for a month or a full year
	GetEmployeeReport(w http.ResponseWriter, r *http.Request)

	// Vacation workday totals per employee
	GetVacationTally(w http.ResponseWriter, r *http.Request)

	// Employee statistics as CSV, XLSX or PDF download
	ExportEmployeeReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// parseEmployeeReportRequest reads month, year and the policy overrides.
// A missing month selects the full year.
func parseEmployeeReportRequest(r *http.Request) (report.EmployeeReportRequest, bool) {
	req := report.EmployeeReportRequest{
		Month: getIntQueryParam(r, "month", 0),
		Year:  getIntQueryParam(r, "year", 0),
	}
	req.VacationFilter = getOptionalQueryParam(r, "vacation_filter")
	req.MonthMembership = getOptionalQueryParam(r, "month_membership")

	if clip := r.URL.Query().Get("clip_to_window"); clip != "" {
		v, err := strconv.ParseBool(clip)
		if err != nil {
			return req, false
		}
		req.ClipToWindow = &v
	}
	return req, true
}

// GetEmployeeReport handles GET /reports/employees
func (h *reportHandlerImpl) GetEmployeeReport(w http.ResponseWriter, r *http.Request) {
	req, ok := parseEmployeeReportRequest(r)
	if !ok {
		response.BadRequest(w, "clip_to_window must be true or false", nil)
		return
	}

	result, err := h.reportService.GenerateEmployeeReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetVacationTally handles GET /reports/employees/vacation-tally
func (h *reportHandlerImpl) GetVacationTally(w http.ResponseWriter, r *http.Request) {
	req, ok := parseEmployeeReportRequest(r)
	if !ok {
		response.BadRequest(w, "clip_to_window must be true or false", nil)
		return
	}

	result, err := h.reportService.Tally(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ExportEmployeeReport handles GET /reports/employees/export
func (h *reportHandlerImpl) ExportEmployeeReport(w http.ResponseWriter, r *http.Request) {
	base, ok := parseEmployeeReportRequest(r)
	if !ok {
		response.BadRequest(w, "clip_to_window must be true or false", nil)
		return
	}

	file, err := h.reportService.Export(r.Context(), report.ExportRequest{
		EmployeeReportRequest: base,
		Format:                r.URL.Query().Get("format"),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, file.Filename, file.ContentType, file.Content)
}
