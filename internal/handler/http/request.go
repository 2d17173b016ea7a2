package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/YossiBuhnik/WorkLog1/internal/domain/request"
	"github.com/YossiBuhnik/WorkLog1/internal/domain/user"
	"github.com/YossiBuhnik/WorkLog1/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type RequestHandler interface {
	// Employee
	Create(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)

	// Manager
	ListManaged(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Schedule(w http.ResponseWriter, r *http.Request)

	// Office
	ListAll(w http.ResponseWriter, r *http.Request)
}

type requestHandlerImpl struct {
	requestService request.Service
}

func NewRequestHandler(requestService request.Service) RequestHandler {
	return &requestHandlerImpl{requestService: requestService}
}

// parseListFilter reads status, type, from, to, page and limit.
func parseListFilter(r *http.Request) request.ListRequestsFilter {
	filter := request.ListRequestsFilter{
		Page:  getIntQueryParam(r, "page", 1),
		Limit: getIntQueryParam(r, "limit", 20),
	}
	q := r.URL.Query()
	if v := q.Get("status"); v != "" {
		filter.Status = &v
	}
	if v := q.Get("type"); v != "" {
		filter.Type = &v
	}
	if v := q.Get("from"); v != "" {
		filter.From = &v
	}
	if v := q.Get("to"); v != "" {
		filter.To = &v
	}
	if v := q.Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	return filter
}

func (h *requestHandlerImpl) respondList(w http.ResponseWriter, result request.ListRequestsResponse) {
	response.SuccessWithMeta(w, result.Requests, pageMeta(result.Page, result.Limit, result.TotalCount))
}

func (h *requestHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create request decode error", "error", err)
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	created, err := h.requestService.Create(r.Context(), getUserIDFromContext(r), req)
	if err != nil {
		slog.Error("Create request service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Request submitted successfully", created)
}

func (h *requestHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	result, err := h.requestService.ListMine(r.Context(), getUserIDFromContext(r), parseListFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	h.respondList(w, result)
}

func (h *requestHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	viewer := request.Viewer{
		UserID:     getUserIDFromContext(r),
		CanViewAll: user.AnyHasPermission(getRolesFromContext(r), user.PermissionRequestViewAll),
	}

	found, err := h.requestService.Get(r.Context(), viewer, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, found)
}

func (h *requestHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	cancelled, err := h.requestService.Cancel(r.Context(), getUserIDFromContext(r), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Request cancelled", cancelled)
}

func (h *requestHandlerImpl) ListManaged(w http.ResponseWriter, r *http.Request) {
	result, err := h.requestService.ListManaged(r.Context(), getUserIDFromContext(r), parseListFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	h.respondList(w, result)
}

func (h *requestHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	filter := parseListFilter(r)
	pending := string(request.StatusPending)
	filter.Status = &pending

	result, err := h.requestService.ListManaged(r.Context(), getUserIDFromContext(r), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	h.respondList(w, result)
}

func (h *requestHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	approved, err := h.requestService.Approve(r.Context(), getUserIDFromContext(r), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	slog.Info("Request approved", "request_id", approved.ID)
	response.SuccessWithMessage(w, "Request approved", approved)
}

func (h *requestHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	rejected, err := h.requestService.Reject(r.Context(), getUserIDFromContext(r), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	slog.Info("Request rejected", "request_id", rejected.ID)
	response.SuccessWithMessage(w, "Request rejected", rejected)
}

// Schedule lists the approved requests of the signed-in manager for a
// month, the current one by default.
func (h *requestHandlerImpl) Schedule(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	req := request.ScheduleRequest{
		Month: getIntQueryParam(r, "month", int(now.Month())),
		Year:  getIntQueryParam(r, "year", now.Year()),
	}

	schedule, err := h.requestService.Schedule(r.Context(), getUserIDFromContext(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, schedule)
}

func (h *requestHandlerImpl) ListAll(w http.ResponseWriter, r *http.Request) {
	result, err := h.requestService.ListAll(r.Context(), parseListFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	h.respondList(w, result)
}
