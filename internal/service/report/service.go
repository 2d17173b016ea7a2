package report

import (
	"context"
	"fmt"
	"time"

	"github.com/YossiBuhnik/WorkLog1/internal/domain/report"
	"github.com/YossiBuhnik/WorkLog1/internal/domain/request"
	"github.com/YossiBuhnik/WorkLog1/internal/domain/user"
	"github.com/YossiBuhnik/WorkLog1/internal/domain/workday"
)

type ReportServiceImpl struct {
	reportRepo report.ReportRepository
	workdaySvc workday.Service
	basePolicy report.Policy
	now        func() time.Time
}

func NewReportService(reportRepo report.ReportRepository, workdaySvc workday.Service, basePolicy report.Policy) report.ReportService {
	return &ReportServiceImpl{
		reportRepo: reportRepo,
		workdaySvc: workdaySvc,
		basePolicy: basePolicy,
		now:        time.Now,
	}
}

// withDefaultYear fills in the current year, in the office time zone, when
// the caller left it out.
func (s *ReportServiceImpl) withDefaultYear(req report.EmployeeReportRequest) report.EmployeeReportRequest {
	if req.Year == 0 {
		req.Year = s.now().In(s.workdaySvc.Location()).Year()
	}
	return req
}

// load fetches everything the aggregator needs for one window.
func (s *ReportServiceImpl) load(ctx context.Context, req report.EmployeeReportRequest) (*report.Aggregator, []request.Request, []user.User, error) {
	policy := req.ApplyTo(s.basePolicy)
	if err := policy.Validate(); err != nil {
		return nil, nil, nil, err
	}

	accountant, err := s.workdaySvc.Accountant(ctx)
	if err != nil {
		return nil, nil, nil, err
	}

	bounds := req.Window().Range(accountant.Location())
	requests, err := s.reportRepo.ListRequests(ctx, bounds.Start, bounds.End)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: failed to get requests: %v", report.ErrReportGenerationFailed, err)
	}

	users, err := s.reportRepo.ListUsers(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: failed to get users: %v", report.ErrReportGenerationFailed, err)
	}

	return report.NewAggregator(accountant, policy), requests, users, nil
}

// GenerateEmployeeReport implements report.ReportService.
func (s *ReportServiceImpl) GenerateEmployeeReport(ctx context.Context, req report.EmployeeReportRequest) (report.EmployeeReport, error) {
	req = s.withDefaultYear(req)
	if err := req.Validate(); err != nil {
		return report.EmployeeReport{}, err
	}

	aggregator, requests, users, err := s.load(ctx, req)
	if err != nil {
		return report.EmployeeReport{}, err
	}

	result := aggregator.Build(requests, users, req.Window())
	result.GeneratedAt = s.now().Format(time.RFC3339)
	return result, nil
}

// Tally implements report.ReportService.
func (s *ReportServiceImpl) Tally(ctx context.Context, req report.EmployeeReportRequest) ([]report.EmployeeVacationTally, error) {
	req = s.withDefaultYear(req)
	if err := req.Validate(); err != nil {
		return nil, err
	}

	aggregator, requests, users, err := s.load(ctx, req)
	if err != nil {
		return nil, err
	}

	tallies := aggregator.Tally(requests, users, req.Window())
	if tallies == nil {
		tallies = []report.EmployeeVacationTally{}
	}
	return tallies, nil
}

// Export implements report.ReportService.
func (s *ReportServiceImpl) Export(ctx context.Context, req report.ExportRequest) (report.ExportFile, error) {
	req.EmployeeReportRequest = s.withDefaultYear(req.EmployeeReportRequest)
	if err := req.Validate(); err != nil {
		return report.ExportFile{}, err
	}

	rep, err := s.GenerateEmployeeReport(ctx, req.EmployeeReportRequest)
	if err != nil {
		return report.ExportFile{}, err
	}

	format := report.Format(req.Format)
	content, err := render(format, rep)
	if err != nil {
		return report.ExportFile{}, fmt.Errorf("%w: %v", report.ErrReportGenerationFailed, err)
	}

	return report.ExportFile{
		Filename:    fmt.Sprintf("employee-stats-%s-%d.%s", rep.Window.Label(), rep.Window.Year, format),
		ContentType: contentTypes[format],
		Content:     content,
	}, nil
}
