package report

import "errors"

var (
	ErrInvalidMonth           = errors.New("month must be between 0 and 12")
	ErrInvalidYear            = errors.New("year must be a valid year")
	ErrInvalidVacationFilter  = errors.New("vacation filter must be approved or non_cancelled")
	ErrInvalidMonthMembership = errors.New("month membership must be overlap or created_at")
	ErrUnsupportedFormat      = errors.New("export format must be csv, xlsx or pdf")
	ErrReportGenerationFailed = errors.New("failed to generate report")
)
