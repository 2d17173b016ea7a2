package postgresql

import (
	"context"
	"time"

	"github.com/YossiBuhnik/WorkLog1/internal/domain/report"
	"github.com/YossiBuhnik/WorkLog1/internal/domain/request"
	"github.com/YossiBuhnik/WorkLog1/internal/domain/user"
	"github.com/YossiBuhnik/WorkLog1/internal/pkg/database"
)

type reportRepositoryImpl struct {
	requests *requestRepositoryImpl
	db       *database.DB
}

func NewReportRepository(db *database.DB, loc *time.Location) report.ReportRepository {
	return &reportRepositoryImpl{requests: newRequestRepository(db, loc), db: db}
}

// ListRequests implements report.ReportRepository.
func (r *reportRepositoryImpl) ListRequests(ctx context.Context, from, to time.Time) ([]request.Request, error) {
	return r.requests.ListInRange(ctx, &from, &to)
}

// ListUsers implements report.ReportRepository.
func (r *reportRepositoryImpl) ListUsers(ctx context.Context) ([]user.User, error) {
	users := &userRepositoryImpl{db: r.db}
	return users.queryUsers(ctx, GetQuerier(ctx, r.db), `SELECT `+userColumns+` FROM users ORDER BY name, email`)
}
