package dashboard

import (
	"context"
	"time"
)

// RequestCountFilter narrows CountRequests. Empty fields match everything;
// the created range is half-open [CreatedFrom, CreatedTo).
type RequestCountFilter struct {
	Type        string
	Status      string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// DashboardRepository defines the interface for dashboard data access
type DashboardRepository interface {
	CountRequests(ctx context.Context, filter RequestCountFilter) (int64, error)

	// CountEmployees counts users holding the employee role
	CountEmployees(ctx context.Context) (int64, error)

	// GetRecentRequests returns the newest requests, newest first
	GetRecentRequests(ctx context.Context, limit int) ([]RecentRequestItem, error)

	// GetPendingByManager returns pending counts of managers that have any
	GetPendingByManager(ctx context.Context) ([]ManagerPendingItem, error)
}
