package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/YossiBuhnik/WorkLog1/internal/domain/request"
	"github.com/YossiBuhnik/WorkLog1/internal/domain/user"
	"github.com/YossiBuhnik/WorkLog1/internal/repository/postgresql"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createRequest(t *testing.T, repo request.RequestRepository, r request.Request) request.Request {
	t.Helper()
	r.ID = uuid.New().String()
	created, err := repo.Create(context.Background(), r)
	require.NoError(t, err)
	return created
}

func TestRequestRepository_CreateAndGet(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	repo := postgresql.NewRequestRepository(testDB, loc)

	emp := createUser(t, "dana@example.com", "Dana", user.RoleEmployee)
	mgr := createUser(t, "moshe@example.com", "Moshe", user.RoleManager)

	end := day(2025, 6, 5)
	created := createRequest(t, repo, request.Request{
		EmployeeID: emp.ID,
		ManagerID:  mgr.ID,
		Type:       request.TypeVacation,
		StartDate:  day(2025, 6, 1),
		EndDate:    &end,
	})

	assert.Equal(t, "Dana", created.EmployeeName)
	assert.Equal(t, request.StatusPending, created.Status)
	assert.True(t, created.StartDate.Equal(day(2025, 6, 1)))
	assert.Equal(t, loc, created.StartDate.Location())
	require.NotNil(t, created.EndDate)
	assert.True(t, created.EndDate.Equal(end))

	_, err := repo.GetByID(ctx, uuid.New().String())
	assert.ErrorIs(t, err, request.ErrRequestNotFound)
}

func TestRequestRepository_UpdateStatusAndPendingCounts(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	repo := postgresql.NewRequestRepository(testDB, loc)

	emp := createUser(t, "dana@example.com", "Dana", user.RoleEmployee)
	mgr := createUser(t, "moshe@example.com", "Moshe", user.RoleManager)

	r1 := createRequest(t, repo, request.Request{EmployeeID: emp.ID, ManagerID: mgr.ID, Type: request.TypeExtraShift, StartDate: day(2025, 6, 10)})
	createRequest(t, repo, request.Request{EmployeeID: emp.ID, ManagerID: mgr.ID, Type: request.TypeExtraShift, StartDate: day(2025, 6, 11)})

	counts, err := repo.CountPendingByManager(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{mgr.ID: 2}, counts)

	require.NoError(t, r1.Approve(mgr.ID, time.Now()))
	require.NoError(t, repo.UpdateStatus(ctx, r1, request.StatusPending))

	got, err := repo.GetByID(ctx, r1.ID)
	require.NoError(t, err)
	assert.Equal(t, request.StatusApproved, got.Status)
	require.NotNil(t, got.ApprovedBy)
	assert.Equal(t, mgr.ID, *got.ApprovedBy)

	counts, err = repo.CountPendingByManager(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts[mgr.ID])
}

func TestRequestRepository_UpdateStatusRequiresExpectedStatus(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	repo := postgresql.NewRequestRepository(testDB, loc)

	emp := createUser(t, "dana@example.com", "Dana", user.RoleEmployee)
	mgr := createUser(t, "moshe@example.com", "Moshe", user.RoleManager)

	created := createRequest(t, repo, request.Request{EmployeeID: emp.ID, ManagerID: mgr.ID, Type: request.TypeExtraShift, StartDate: day(2025, 6, 10)})

	// Both sides read the request while it is pending.
	cancelled, approved := created, created
	require.NoError(t, cancelled.Cancel(day(2025, 6, 1), loc))
	require.NoError(t, repo.UpdateStatus(ctx, cancelled, request.StatusPending))

	require.NoError(t, approved.Approve(mgr.ID, time.Now()))
	err := repo.UpdateStatus(ctx, approved, request.StatusPending)
	assert.ErrorIs(t, err, request.ErrRequestAlreadyProcessed)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, request.StatusCancelled, got.Status)
	assert.Nil(t, got.ApprovedBy)

	missing := approved
	missing.ID = uuid.New().String()
	err = repo.UpdateStatus(ctx, missing, request.StatusPending)
	assert.ErrorIs(t, err, request.ErrRequestNotFound)
}

func TestRequestRepository_ListAndRange(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	repo := postgresql.NewRequestRepository(testDB, loc)

	dana := createUser(t, "dana@example.com", "Dana", user.RoleEmployee)
	avi := createUser(t, "avi@example.com", "Avi", user.RoleEmployee)
	mgr := createUser(t, "moshe@example.com", "Moshe", user.RoleManager)

	mayEnd := day(2025, 6, 2)
	createRequest(t, repo, request.Request{EmployeeID: dana.ID, ManagerID: mgr.ID, Type: request.TypeVacation, StartDate: day(2025, 5, 28), EndDate: &mayEnd})
	createRequest(t, repo, request.Request{EmployeeID: avi.ID, ManagerID: mgr.ID, Type: request.TypeExtraShift, StartDate: day(2025, 6, 15)})
	createRequest(t, repo, request.Request{EmployeeID: avi.ID, ManagerID: mgr.ID, Type: request.TypeVacation, StartDate: day(2025, 8, 1)})

	employeeID := avi.ID
	mine, total, err := repo.List(ctx, request.ListRequestsFilter{EmployeeID: &employeeID, Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, mine, 2)

	from, to := day(2025, 6, 1), time.Date(2025, 6, 30, 23, 59, 59, 0, loc)
	typ := string(request.TypeVacation)
	june, total, err := repo.List(ctx, request.ListRequestsFilter{Type: &typ, FromDate: &from, ToDate: &to, Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total, "the May vacation runs into June")
	assert.Equal(t, dana.ID, june[0].EmployeeID)

	inRange, err := repo.ListInRange(ctx, &from, &to)
	require.NoError(t, err)
	assert.Len(t, inRange, 2, "the August vacation neither overlaps nor was created in June 2025")
}
