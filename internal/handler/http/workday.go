package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/YossiBuhnik/WorkLog1/internal/domain/workday"
	"github.com/YossiBuhnik/WorkLog1/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type WorkdayHandler interface {
	CountWorkdays(w http.ResponseWriter, r *http.Request)
	ListHolidays(w http.ResponseWriter, r *http.Request)
	CreateHoliday(w http.ResponseWriter, r *http.Request)
	DeleteHoliday(w http.ResponseWriter, r *http.Request)
}

type workdayHandlerImpl struct {
	workdayService workday.Service
}

func NewWorkdayHandler(workdayService workday.Service) WorkdayHandler {
	return &workdayHandlerImpl{workdayService: workdayService}
}

// CountWorkdays handles GET /workdays?start=&end=&clip_start=&clip_end=
func (h *workdayHandlerImpl) CountWorkdays(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := workday.CountWorkdaysRequest{
		Start:     q.Get("start"),
		End:       q.Get("end"),
		ClipStart: q.Get("clip_start"),
		ClipEnd:   q.Get("clip_end"),
	}

	result, err := h.workdayService.CountWorkdays(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// ListHolidays handles GET /holidays?year=
func (h *workdayHandlerImpl) ListHolidays(w http.ResponseWriter, r *http.Request) {
	year := getIntQueryParam(r, "year", time.Now().In(h.workdayService.Location()).Year())

	result, err := h.workdayService.ListHolidays(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// CreateHoliday handles POST /holidays
func (h *workdayHandlerImpl) CreateHoliday(w http.ResponseWriter, r *http.Request) {
	var req workday.CreateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	created, err := h.workdayService.CreateHoliday(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	slog.Info("Holiday created", "date", created.Date, "name", created.Name)
	response.Created(w, "Holiday created successfully", created)
}

// DeleteHoliday handles DELETE /holidays/{id}
func (h *workdayHandlerImpl) DeleteHoliday(w http.ResponseWriter, r *http.Request) {
	if err := h.workdayService.DeleteHoliday(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Holiday deleted successfully", nil)
}
