package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"testing"
	"time"

	"github.com/YossiBuhnik/WorkLog1/internal/domain/report"
	"github.com/YossiBuhnik/WorkLog1/internal/domain/request"
	"github.com/YossiBuhnik/WorkLog1/internal/domain/user"
	"github.com/YossiBuhnik/WorkLog1/internal/fixtures"
	workdaysvc "github.com/YossiBuhnik/WorkLog1/internal/service/workday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var idt = time.FixedZone("IDT", 3*60*60)

type fakeReportRepo struct {
	listRequestsFn func(ctx context.Context, from, to time.Time) ([]request.Request, error)
	listUsersFn    func(ctx context.Context) ([]user.User, error)
}

func (f *fakeReportRepo) ListRequests(ctx context.Context, from, to time.Time) ([]request.Request, error) {
	return f.listRequestsFn(ctx, from, to)
}

func (f *fakeReportRepo) ListUsers(ctx context.Context) ([]user.User, error) {
	return f.listUsersFn(ctx)
}

func d(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, idt)
}

func ptr(t time.Time) *time.Time { return &t }

func newRepo(t *testing.T) *fakeReportRepo {
	return &fakeReportRepo{
		listRequestsFn: func(_ context.Context, from, to time.Time) ([]request.Request, error) {
			assert.Equal(t, "2025-06-01", from.In(idt).Format("2006-01-02"))
			assert.Equal(t, "2025-06-30", to.In(idt).Format("2006-01-02"))
			return []request.Request{
				{ID: "r1", EmployeeID: "u1", Type: request.TypeVacation, Status: request.StatusApproved, StartDate: d(2025, 6, 1), EndDate: ptr(d(2025, 6, 5)), CreatedAt: d(2025, 5, 20)},
				{ID: "r2", EmployeeID: "u1", Type: request.TypeExtraShift, Status: request.StatusApproved, StartDate: d(2025, 6, 6), CreatedAt: d(2025, 6, 1)},
				{ID: "r3", EmployeeID: "u2", Type: request.TypeExtraShift, Status: request.StatusRejected, StartDate: d(2025, 6, 12), CreatedAt: d(2025, 6, 11)},
				{ID: "r4", EmployeeID: "u2", Type: request.TypeVacation, Status: request.StatusPending, StartDate: d(2025, 6, 16), EndDate: ptr(d(2025, 6, 17)), CreatedAt: d(2025, 6, 11)},
			}, nil
		},
		listUsersFn: func(context.Context) ([]user.User, error) {
			return []user.User{
				{ID: "u1", Name: "Dana", Roles: []user.Role{user.RoleEmployee}},
				{ID: "u2", Name: "Avi", Roles: []user.Role{user.RoleEmployee, user.RoleManager}},
			}, nil
		},
	}
}

func newService(repo report.ReportRepository) *ReportServiceImpl {
	workdays := workdaysvc.NewWorkdayService(nil, fixtures.GetDefaultCalendar(), false, idt)
	svc := NewReportService(repo, workdays, report.DefaultPolicy()).(*ReportServiceImpl)
	svc.now = func() time.Time { return time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC) }
	return svc
}

func TestGenerateEmployeeReport(t *testing.T) {
	svc := newService(newRepo(t))

	rep, err := svc.GenerateEmployeeReport(context.Background(), report.EmployeeReportRequest{Year: 2025, Month: 6})
	require.NoError(t, err)

	assert.Equal(t, "2025-07-01T09:00:00Z", rep.GeneratedAt)
	assert.Equal(t, report.Summary{TotalRequests: 4, ApprovedRequests: 2, RejectedRequests: 1, PendingRequests: 1}, rep.Summary)
	require.Len(t, rep.Employees, 2)
	assert.Equal(t, "Avi", rep.Employees[0].Name, "ties broken by name")
	assert.Equal(t, 0, rep.Employees[0].Vacations.Total, "pending vacation excluded by default")
	assert.Equal(t, 4, rep.Employees[1].Vacations.Total)
}

func TestGenerateEmployeeReport_DefaultsToCurrentYear(t *testing.T) {
	svc := newService(newRepo(t))

	rep, err := svc.GenerateEmployeeReport(context.Background(), report.EmployeeReportRequest{Month: 6})
	require.NoError(t, err)
	assert.Equal(t, 2025, rep.Window.Year)
	assert.Equal(t, "2025-06-01", rep.PeriodStart)

	file, err := svc.Export(context.Background(), report.ExportRequest{EmployeeReportRequest: report.EmployeeReportRequest{Month: 6}})
	require.NoError(t, err)
	assert.Contains(t, file.Filename, "2025")
}

func TestGenerateEmployeeReport_PolicyOverride(t *testing.T) {
	svc := newService(newRepo(t))
	filter := string(report.VacationNonCancelled)

	rep, err := svc.GenerateEmployeeReport(context.Background(), report.EmployeeReportRequest{Year: 2025, Month: 6, VacationFilter: &filter})
	require.NoError(t, err)
	assert.Equal(t, report.VacationNonCancelled, rep.Policy.VacationFilter)
	assert.Equal(t, 2, rep.Employees[0].Vacations.Total, "pending vacation now counted")
}

func TestGenerateEmployeeReport_Errors(t *testing.T) {
	t.Run("invalid request", func(t *testing.T) {
		svc := newService(&fakeReportRepo{})
		_, err := svc.GenerateEmployeeReport(context.Background(), report.EmployeeReportRequest{Year: 2025, Month: 14})
		assert.Error(t, err)
	})

	t.Run("repository failure", func(t *testing.T) {
		repo := &fakeReportRepo{
			listRequestsFn: func(context.Context, time.Time, time.Time) ([]request.Request, error) {
				return nil, errors.New("connection refused")
			},
		}
		svc := newService(repo)
		_, err := svc.GenerateEmployeeReport(context.Background(), report.EmployeeReportRequest{Year: 2025, Month: 6})
		assert.ErrorIs(t, err, report.ErrReportGenerationFailed)
		assert.ErrorContains(t, err, "connection refused")
	})

	t.Run("user lookup failure", func(t *testing.T) {
		repo := newRepo(t)
		repo.listUsersFn = func(context.Context) ([]user.User, error) {
			return nil, errors.New("connection reset")
		}
		svc := newService(repo)
		_, err := svc.Tally(context.Background(), report.EmployeeReportRequest{Year: 2025, Month: 6})
		assert.ErrorIs(t, err, report.ErrReportGenerationFailed)
	})
}

func TestTally(t *testing.T) {
	svc := newService(newRepo(t))

	tallies, err := svc.Tally(context.Background(), report.EmployeeReportRequest{Year: 2025, Month: 6})
	require.NoError(t, err)
	assert.Equal(t, []report.EmployeeVacationTally{
		{EmployeeID: "u1", TotalWorkdays: 4},
		{EmployeeID: "u2", TotalWorkdays: 0},
	}, tallies)
}

func TestExport_CSV(t *testing.T) {
	svc := newService(newRepo(t))

	file, err := svc.Export(context.Background(), report.ExportRequest{EmployeeReportRequest: report.EmployeeReportRequest{Year: 2025, Month: 6}})
	require.NoError(t, err)
	assert.Equal(t, "employee-stats-june-2025.csv", file.Filename)
	assert.Equal(t, "text/csv", file.ContentType)

	r := csv.NewReader(bytes.NewReader(file.Content))
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Employee Statistics - June 2025"}, rows[0])
	assert.Equal(t, statsHeader, rows[1])
	assert.Equal(t, []string{"Avi", "1", "0", "1", "0"}, rows[2])
	assert.Equal(t, []string{"Dana", "1", "1", "0", "4"}, rows[3])
}

func TestExport_XLSX(t *testing.T) {
	svc := newService(newRepo(t))

	file, err := svc.Export(context.Background(), report.ExportRequest{
		EmployeeReportRequest: report.EmployeeReportRequest{Year: 2025, Month: 6},
		Format:                "XLSX",
	})
	require.NoError(t, err)
	assert.Equal(t, "employee-stats-june-2025.xlsx", file.Filename)

	f, err := excelize.OpenReader(bytes.NewReader(file.Content))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{statsSheet, vacationSheet}, f.GetSheetList())

	rows, err := f.GetRows(statsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, "Employee Statistics - June 2025", rows[0][0])
	assert.Equal(t, statsHeader, rows[2])
	assert.Equal(t, []string{"Dana", "1", "1", "0", "4"}, rows[4])

	vacations, err := f.GetRows(vacationSheet)
	require.NoError(t, err)
	require.Len(t, vacations, 2)
	assert.Equal(t, []string{"Dana", "r1", "2025-06-01", "2025-06-05", "approved", "4"}, vacations[1])
}

func TestExport_PDF(t *testing.T) {
	svc := newService(newRepo(t))

	file, err := svc.Export(context.Background(), report.ExportRequest{
		EmployeeReportRequest: report.EmployeeReportRequest{Year: 2025, Month: 6},
		Format:                "pdf",
	})
	require.NoError(t, err)
	assert.Equal(t, "employee-stats-june-2025.pdf", file.Filename)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.True(t, bytes.HasPrefix(file.Content, []byte("%PDF")))
}

func TestExport_UnknownFormat(t *testing.T) {
	svc := newService(&fakeReportRepo{})

	_, err := svc.Export(context.Background(), report.ExportRequest{
		EmployeeReportRequest: report.EmployeeReportRequest{Year: 2025, Month: 6},
		Format:                "docx",
	})
	assert.Error(t, err)
}
