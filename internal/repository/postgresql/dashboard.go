package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/YossiBuhnik/WorkLog1/internal/domain/dashboard"
	"github.com/YossiBuhnik/WorkLog1/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// CountRequests counts requests matching every non-empty field of filter
func (r *dashboardRepositoryImpl) CountRequests(ctx context.Context, filter dashboard.RequestCountFilter) (int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	var args []interface{}
	argIndex := 1

	if filter.Type != "" {
		conditions = append(conditions, fmt.Sprintf("type = $%d", argIndex))
		args = append(args, filter.Type)
		argIndex++
	}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIndex))
		args = append(args, filter.Status)
		argIndex++
	}
	if filter.CreatedFrom != nil {
		conditions = append(conditions, fmt.Sprintf("created_at >= $%d", argIndex))
		args = append(args, *filter.CreatedFrom)
		argIndex++
	}
	if filter.CreatedTo != nil {
		conditions = append(conditions, fmt.Sprintf("created_at < $%d", argIndex))
		args = append(args, *filter.CreatedTo)
	}

	query := "SELECT COUNT(*) FROM requests WHERE " + strings.Join(conditions, " AND ")

	var count int64
	if err := q.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count requests: %w", err)
	}
	return count, nil
}

// CountEmployees counts users holding the employee role
func (r *dashboardRepositoryImpl) CountEmployees(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE 'employee' = ANY(roles)`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return count, nil
}

// GetRecentRequests returns the newest requests with their employee names
func (r *dashboardRepositoryImpl) GetRecentRequests(ctx context.Context, limit int) ([]dashboard.RecentRequestItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			r.id,
			COALESCE(NULLIF(u.name, ''), u.email, '') as employee_name,
			r.type,
			r.status,
			r.start_date,
			r.end_date,
			r.created_at
		FROM requests r
		LEFT JOIN users u ON u.id = r.employee_id
		ORDER BY r.created_at DESC
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent requests: %w", err)
	}
	defer rows.Close()

	items := []dashboard.RecentRequestItem{}
	for rows.Next() {
		var item dashboard.RecentRequestItem
		var start, end *time.Time
		var createdAt time.Time
		if err := rows.Scan(&item.ID, &item.EmployeeName, &item.Type, &item.Status, &start, &end, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan recent request: %w", err)
		}
		if start != nil {
			item.StartDate = start.Format("2006-01-02")
		}
		if end != nil {
			e := end.Format("2006-01-02")
			item.EndDate = &e
		}
		item.CreatedAt = createdAt.Format(time.RFC3339)
		items = append(items, item)
	}
	return items, rows.Err()
}

// GetPendingByManager returns pending counts per manager, largest first
func (r *dashboardRepositoryImpl) GetPendingByManager(ctx context.Context) ([]dashboard.ManagerPendingItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			m.id,
			COALESCE(NULLIF(m.name, ''), m.email) as manager_name,
			COUNT(r.id) as pending
		FROM requests r
		JOIN users m ON m.id = r.manager_id
		WHERE r.status = 'pending'
		GROUP BY m.id, m.name, m.email
		ORDER BY pending DESC, manager_name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get pending by manager: %w", err)
	}
	defer rows.Close()

	items := []dashboard.ManagerPendingItem{}
	for rows.Next() {
		var item dashboard.ManagerPendingItem
		if err := rows.Scan(&item.ManagerID, &item.ManagerName, &item.Pending); err != nil {
			return nil, fmt.Errorf("failed to scan pending by manager: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
