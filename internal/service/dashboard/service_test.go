package dashboard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/YossiBuhnik/WorkLog1/internal/domain/dashboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDashboardRepo struct {
	mu      sync.Mutex
	filters []dashboard.RequestCountFilter

	countErr error
}

func (f *fakeDashboardRepo) CountRequests(_ context.Context, filter dashboard.RequestCountFilter) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.filters = append(f.filters, filter)
	if f.countErr != nil {
		return 0, f.countErr
	}
	if filter.Status == "pending" {
		return 7, nil
	}
	return 3, nil
}

func (f *fakeDashboardRepo) CountEmployees(context.Context) (int64, error) {
	return 12, nil
}

func (f *fakeDashboardRepo) GetRecentRequests(_ context.Context, limit int) ([]dashboard.RecentRequestItem, error) {
	items := []dashboard.RecentRequestItem{{ID: "r1"}, {ID: "r2"}}
	if limit < len(items) {
		items = items[:limit]
	}
	return items, nil
}

func (f *fakeDashboardRepo) GetPendingByManager(context.Context) ([]dashboard.ManagerPendingItem, error) {
	return nil, nil
}

func TestGetOfficeDashboard(t *testing.T) {
	loc := time.FixedZone("IDT", 3*60*60)
	repo := &fakeDashboardRepo{}
	svc := NewDashboardService(repo, loc).(*DashboardServiceImpl)
	// 22:30 UTC on May 31 is already June 1 locally.
	svc.now = func() time.Time { return time.Date(2025, 5, 31, 22, 30, 0, 0, time.UTC) }

	resp, err := svc.GetOfficeDashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "2025-06", resp.Month)
	assert.EqualValues(t, 3, resp.ApprovedExtraShifts)
	assert.EqualValues(t, 7, resp.PendingRequests)
	assert.EqualValues(t, 12, resp.EmployeeCount)
	assert.Len(t, resp.RecentRequests, 2)
	assert.NotNil(t, resp.PendingByManager)

	var shifts dashboard.RequestCountFilter
	for _, f := range repo.filters {
		if f.Type == "extra_shift" {
			shifts = f
		}
	}
	require.NotNil(t, shifts.CreatedFrom)
	assert.True(t, shifts.CreatedFrom.Equal(time.Date(2025, 6, 1, 0, 0, 0, 0, loc)))
	assert.True(t, shifts.CreatedTo.Equal(time.Date(2025, 7, 1, 0, 0, 0, 0, loc)))
	assert.Equal(t, "approved", shifts.Status)
}

func TestGetOfficeDashboard_Error(t *testing.T) {
	svc := NewDashboardService(&fakeDashboardRepo{countErr: errors.New("db down")}, time.UTC)

	_, err := svc.GetOfficeDashboard(context.Background())
	assert.EqualError(t, err, "db down")
}
