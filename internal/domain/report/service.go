package report

import "context"

// ReportService defines the interface for report generation
type ReportService interface {
	// GenerateEmployeeReport aggregates requests of the window per employee
	GenerateEmployeeReport(ctx context.Context, req EmployeeReportRequest) (EmployeeReport, error)

	// Tally returns only the vacation workday totals per employee
	Tally(ctx context.Context, req EmployeeReportRequest) ([]EmployeeVacationTally, error)

	// Export renders the employee report as a downloadable file
	Export(ctx context.Context, req ExportRequest) (ExportFile, error)
}
