package dashboard

import (
	"context"
	"time"

	"github.com/YossiBuhnik/WorkLog1/internal/domain/dashboard"
	"github.com/YossiBuhnik/WorkLog1/internal/domain/request"
	"golang.org/x/sync/errgroup"
)

const recentRequestsLimit = 5

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
	loc *time.Location
	now func() time.Time
}

func NewDashboardService(repo dashboard.DashboardRepository, loc *time.Location) dashboard.DashboardService {
	if loc == nil {
		loc = time.Local
	}
	return &DashboardServiceImpl{
		DashboardRepository: repo,
		loc:                 loc,
		now:                 time.Now,
	}
}

// GetOfficeDashboard returns the office counters using parallel goroutines,
// one query each.
func (s *DashboardServiceImpl) GetOfficeDashboard(ctx context.Context) (*dashboard.OfficeDashboardResponse, error) {
	now := s.now().In(s.loc)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, s.loc)
	nextMonth := monthStart.AddDate(0, 1, 0)

	var (
		approvedShifts int64
		pending        int64
		employees      int64
		recent         []dashboard.RecentRequestItem
		byManager      []dashboard.ManagerPendingItem
	)

	g, gCtx := errgroup.WithContext(ctx)

	// 1. Approved extra shifts created this month
	g.Go(func() error {
		n, err := s.CountRequests(gCtx, dashboard.RequestCountFilter{
			Type:        string(request.TypeExtraShift),
			Status:      string(request.StatusApproved),
			CreatedFrom: &monthStart,
			CreatedTo:   &nextMonth,
		})
		approvedShifts = n
		return err
	})

	// 2. Pending requests of all time
	g.Go(func() error {
		n, err := s.CountRequests(gCtx, dashboard.RequestCountFilter{Status: string(request.StatusPending)})
		pending = n
		return err
	})

	// 3. Employees
	g.Go(func() error {
		n, err := s.CountEmployees(gCtx)
		employees = n
		return err
	})

	// 4. Latest requests
	g.Go(func() error {
		items, err := s.GetRecentRequests(gCtx, recentRequestsLimit)
		recent = items
		return err
	})

	// 5. Pending per manager
	g.Go(func() error {
		items, err := s.GetPendingByManager(gCtx)
		byManager = items
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if recent == nil {
		recent = []dashboard.RecentRequestItem{}
	}
	if byManager == nil {
		byManager = []dashboard.ManagerPendingItem{}
	}

	return &dashboard.OfficeDashboardResponse{
		Month:               monthStart.Format("2006-01"),
		ApprovedExtraShifts: approvedShifts,
		PendingRequests:     pending,
		EmployeeCount:       employees,
		RecentRequests:      recent,
		PendingByManager:    byManager,
		UpdatedAt:           now.Format(time.RFC3339),
	}, nil
}
