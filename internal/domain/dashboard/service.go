package dashboard

import "context"

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetOfficeDashboard returns the office counters using parallel queries
	GetOfficeDashboard(ctx context.Context) (*OfficeDashboardResponse, error)
}
