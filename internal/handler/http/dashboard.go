package http

import (
	"net/http"

	"github.com/YossiBuhnik/WorkLog1/internal/domain/dashboard"
	"github.com/YossiBuhnik/WorkLog1/internal/handler/http/response"
)

type DashboardHandler interface {
	// GetOfficeDashboard returns the office overview
	GetOfficeDashboard(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// GetOfficeDashboard handles GET /dashboard/office
func (h *dashboardHandlerImpl) GetOfficeDashboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetOfficeDashboard(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
