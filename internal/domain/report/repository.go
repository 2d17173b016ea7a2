package report

import (
	"context"
	"time"

	"github.com/YossiBuhnik/WorkLog1/internal/domain/request"
	"github.com/YossiBuhnik/WorkLog1/internal/domain/user"
)

// ReportRepository defines the interface for report data access
type ReportRepository interface {
	// ListRequests returns requests that overlap [from, to] or were created
	// in it.
	ListRequests(ctx context.Context, from, to time.Time) ([]request.Request, error)
	ListUsers(ctx context.Context) ([]user.User, error)
}
