package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/YossiBuhnik/WorkLog1/internal/domain/request"
	"github.com/YossiBuhnik/WorkLog1/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const requestColumns = `
	r.id, r.employee_id, COALESCE(NULLIF(e.name, ''), e.email, ''), r.manager_id, r.type, r.status,
	r.start_date, r.end_date, r.project_name, r.notes, r.approved_by, r.decided_at,
	r.created_at, r.updated_at`

const requestFrom = `FROM requests r LEFT JOIN users e ON e.id = r.employee_id`

type requestRepositoryImpl struct {
	db  *database.DB
	loc *time.Location
}

// NewRequestRepository returns a repository that anchors DATE columns at
// midnight of loc.
func NewRequestRepository(db *database.DB, loc *time.Location) request.RequestRepository {
	return newRequestRepository(db, loc)
}

func newRequestRepository(db *database.DB, loc *time.Location) *requestRepositoryImpl {
	if loc == nil {
		loc = time.Local
	}
	return &requestRepositoryImpl{db: db, loc: loc}
}

// civilDate drops the clock and zone of t, keeping its calendar day in loc.
func civilDate(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (r *requestRepositoryImpl) anchor(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, r.loc)
}

func (r *requestRepositoryImpl) scanRequest(row pgx.Row) (request.Request, error) {
	var (
		req        request.Request
		managerID  *string
		reqType    string
		status     string
		start, end *time.Time
	)
	err := row.Scan(
		&req.ID,
		&req.EmployeeID,
		&req.EmployeeName,
		&managerID,
		&reqType,
		&status,
		&start,
		&end,
		&req.ProjectName,
		&req.Notes,
		&req.ApprovedBy,
		&req.DecidedAt,
		&req.CreatedAt,
		&req.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return request.Request{}, request.ErrRequestNotFound
		}
		return request.Request{}, err
	}

	req.Type = request.Type(reqType)
	req.Status = request.Status(status)
	if managerID != nil {
		req.ManagerID = *managerID
	}
	if start != nil {
		req.StartDate = r.anchor(*start)
	}
	if end != nil {
		e := r.anchor(*end)
		req.EndDate = &e
	}
	return req, nil
}

func (r *requestRepositoryImpl) queryRequests(ctx context.Context, query string, args ...interface{}) ([]request.Request, error) {
	q := GetQuerier(ctx, r.db)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query requests: %w", err)
	}
	defer rows.Close()

	requests := []request.Request{}
	for rows.Next() {
		req, err := r.scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan request: %w", err)
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

// Create implements request.RequestRepository.
func (r *requestRepositoryImpl) Create(ctx context.Context, req request.Request) (request.Request, error) {
	q := GetQuerier(ctx, r.db)

	var start, end *time.Time
	if req.HasStartDate() {
		s := civilDate(req.StartDate, r.loc)
		start = &s
	}
	if req.EndDate != nil && !req.EndDate.IsZero() {
		e := civilDate(*req.EndDate, r.loc)
		end = &e
	}
	var managerID *string
	if req.ManagerID != "" {
		managerID = &req.ManagerID
	}
	if req.Status == "" {
		req.Status = request.StatusPending
	}

	query := `
		INSERT INTO requests (id, employee_id, manager_id, type, status, start_date, end_date, project_name, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING id
	`
	var id string
	err := q.QueryRow(ctx, query,
		req.ID,
		req.EmployeeID,
		managerID,
		string(req.Type),
		string(req.Status),
		start,
		end,
		req.ProjectName,
		req.Notes,
	).Scan(&id)
	if err != nil {
		return request.Request{}, fmt.Errorf("failed to create request: %w", err)
	}

	return r.GetByID(ctx, id)
}

// GetByID implements request.RequestRepository.
func (r *requestRepositoryImpl) GetByID(ctx context.Context, id string) (request.Request, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + requestColumns + ` ` + requestFrom + ` WHERE r.id = $1`
	return r.scanRequest(q.QueryRow(ctx, query, id))
}

// List implements request.RequestRepository. From and To select requests
// whose dates overlap the closed range.
func (r *requestRepositoryImpl) List(ctx context.Context, filter request.ListRequestsFilter) ([]request.Request, int64, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []interface{}
	argIndex := 1

	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("r.employee_id = $%d", argIndex))
		args = append(args, *filter.EmployeeID)
		argIndex++
	}
	if filter.ManagerID != nil {
		conditions = append(conditions, fmt.Sprintf("r.manager_id = $%d", argIndex))
		args = append(args, *filter.ManagerID)
		argIndex++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("r.status = $%d", argIndex))
		args = append(args, *filter.Status)
		argIndex++
	}
	if filter.Type != nil {
		conditions = append(conditions, fmt.Sprintf("r.type = $%d", argIndex))
		args = append(args, *filter.Type)
		argIndex++
	}
	if filter.FromDate != nil {
		conditions = append(conditions, fmt.Sprintf("COALESCE(r.end_date, r.start_date) >= $%d", argIndex))
		args = append(args, civilDate(*filter.FromDate, filter.FromDate.Location()))
		argIndex++
	}
	if filter.ToDate != nil {
		conditions = append(conditions, fmt.Sprintf("r.start_date <= $%d", argIndex))
		args = append(args, civilDate(*filter.ToDate, filter.ToDate.Location()))
		argIndex++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) %s %s", requestFrom, whereClause)
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count requests: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s %s %s ORDER BY r.created_at DESC, r.id LIMIT $%d OFFSET $%d`,
		requestColumns, requestFrom, whereClause, argIndex, argIndex+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	requests, err := r.queryRequests(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return requests, total, nil
}

// ListInRange implements request.RequestRepository.
func (r *requestRepositoryImpl) ListInRange(ctx context.Context, from, to *time.Time) ([]request.Request, error) {
	var fromDate, toDate *time.Time
	if from != nil {
		d := civilDate(*from, r.loc)
		fromDate = &d
	}
	if to != nil {
		d := civilDate(*to, r.loc)
		toDate = &d
	}

	query := `SELECT ` + requestColumns + ` ` + requestFrom + `
		WHERE (
			r.start_date IS NOT NULL
			AND ($1::date IS NULL OR COALESCE(r.end_date, r.start_date) >= $1::date)
			AND ($2::date IS NULL OR r.start_date <= $2::date)
		) OR (
			($3::timestamptz IS NULL OR r.created_at >= $3::timestamptz)
			AND ($4::timestamptz IS NULL OR r.created_at <= $4::timestamptz)
		)
		ORDER BY r.start_date NULLS LAST, r.created_at`

	return r.queryRequests(ctx, query, fromDate, toDate, from, to)
}

// UpdateStatus implements request.RequestRepository.
func (r *requestRepositoryImpl) UpdateStatus(ctx context.Context, req request.Request, from request.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE requests
		SET status = $1, approved_by = $2, decided_at = $3, updated_at = NOW()
		WHERE id = $4 AND status = $5
	`
	result, err := q.Exec(ctx, query, string(req.Status), req.ApprovedBy, req.DecidedAt, req.ID, string(from))
	if err != nil {
		return fmt.Errorf("failed to update request status: %w", err)
	}
	if result.RowsAffected() > 0 {
		return nil
	}

	// Nothing matched: either the request is gone or its status changed.
	if _, err := r.GetByID(ctx, req.ID); err != nil {
		return err
	}
	return request.ErrRequestAlreadyProcessed
}

// CountPendingByManager implements request.RequestRepository.
func (r *requestRepositoryImpl) CountPendingByManager(ctx context.Context) (map[string]int64, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT manager_id, COUNT(*)
		FROM requests
		WHERE status = 'pending' AND manager_id IS NOT NULL
		GROUP BY manager_id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending requests: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var managerID string
		var count int64
		if err := rows.Scan(&managerID, &count); err != nil {
			return nil, fmt.Errorf("failed to scan pending count: %w", err)
		}
		counts[managerID] = count
	}
	return counts, rows.Err()
}
