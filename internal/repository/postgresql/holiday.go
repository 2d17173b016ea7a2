package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/YossiBuhnik/WorkLog1/internal/domain/workday"
	"github.com/YossiBuhnik/WorkLog1/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) workday.HolidayRepository {
	return &holidayRepositoryImpl{db: db}
}

func scanHoliday(row pgx.Row) (workday.Holiday, error) {
	var h workday.Holiday
	var date time.Time
	if err := row.Scan(&h.ID, &date, &h.Name, &h.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return workday.Holiday{}, workday.ErrHolidayNotFound
		}
		return workday.Holiday{}, err
	}
	h.Date = date.Format(workday.DateLayout)
	return h, nil
}

func (r *holidayRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]workday.Holiday, error) {
	q := GetQuerier(ctx, r.db)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query holidays: %w", err)
	}
	defer rows.Close()

	holidays := []workday.Holiday{}
	for rows.Next() {
		h, err := scanHoliday(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}

// ListByYear implements workday.HolidayRepository.
func (r *holidayRepositoryImpl) ListByYear(ctx context.Context, year int) ([]workday.Holiday, error) {
	return r.list(ctx, `
		SELECT id, date, name, created_at
		FROM holidays
		WHERE EXTRACT(YEAR FROM date) = $1
		ORDER BY date
	`, year)
}

// ListAll implements workday.HolidayRepository.
func (r *holidayRepositoryImpl) ListAll(ctx context.Context) ([]workday.Holiday, error) {
	return r.list(ctx, `SELECT id, date, name, created_at FROM holidays ORDER BY date`)
}

// GetByID implements workday.HolidayRepository.
func (r *holidayRepositoryImpl) GetByID(ctx context.Context, id string) (workday.Holiday, error) {
	q := GetQuerier(ctx, r.db)
	return scanHoliday(q.QueryRow(ctx, `SELECT id, date, name, created_at FROM holidays WHERE id = $1`, id))
}

// Create implements workday.HolidayRepository.
func (r *holidayRepositoryImpl) Create(ctx context.Context, holiday workday.Holiday) (workday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO holidays (id, date, name)
		VALUES (COALESCE(NULLIF($1, '')::uuid, gen_random_uuid()), $2::date, $3)
		RETURNING id, date, name, created_at
	`
	created, err := scanHoliday(q.QueryRow(ctx, query, holiday.ID, holiday.Date, holiday.Name))
	if err != nil {
		if isUniqueViolation(err) {
			return workday.Holiday{}, workday.ErrHolidayExists
		}
		return workday.Holiday{}, fmt.Errorf("failed to create holiday: %w", err)
	}
	return created, nil
}

// Delete implements workday.HolidayRepository.
func (r *holidayRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	result, err := q.Exec(ctx, `DELETE FROM holidays WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	if result.RowsAffected() == 0 {
		return workday.ErrHolidayNotFound
	}
	return nil
}
