package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/YossiBuhnik/WorkLog1/internal/config"
	"github.com/YossiBuhnik/WorkLog1/internal/domain/report"
	"github.com/YossiBuhnik/WorkLog1/internal/pkg/database"
	"github.com/YossiBuhnik/WorkLog1/internal/repository/postgresql"
	reportService "github.com/YossiBuhnik/WorkLog1/internal/service/report"
	workdayService "github.com/YossiBuhnik/WorkLog1/internal/service/workday"
	"github.com/spf13/cobra"
)

type reportFlags struct {
	year            int
	month           int
	vacationFilter  string
	monthMembership string
	clipToWindow    bool
	eves            bool
}

func (f *reportFlags) register(cmd *cobra.Command) {
	now := time.Now()
	cmd.Flags().IntVar(&f.year, "year", now.Year(), "Report year")
	cmd.Flags().IntVar(&f.month, "month", int(now.Month()), "Report month 1-12, 0 for the full year")
	cmd.Flags().StringVar(&f.vacationFilter, "vacation-filter", string(report.VacationApprovedOnly), "approved or non_cancelled")
	cmd.Flags().StringVar(&f.monthMembership, "month-membership", string(report.MembershipOverlap), "overlap or created_at")
	cmd.Flags().BoolVar(&f.clipToWindow, "clip", true, "Count only vacation days inside the window")
	cmd.Flags().BoolVar(&f.eves, "eves", false, "Treat the day before each holiday as a holiday too")
}

func (f *reportFlags) request() report.EmployeeReportRequest {
	return report.EmployeeReportRequest{
		Year:            f.year,
		Month:           f.month,
		VacationFilter:  &f.vacationFilter,
		MonthMembership: &f.monthMembership,
		ClipToWindow:    &f.clipToWindow,
	}
}

func newReportCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Employee statistics from the database",
	}
	cmd.AddCommand(newReportExportCmd(opts), newReportTallyCmd(opts))
	return cmd
}

func newReportExportCmd(opts *globalOptions) *cobra.Command {
	var (
		flags  reportFlags
		format string
		out    string
	)

	cmd := &cobra.Command{
		Use:     "export",
		Short:   "Write the employee report as CSV, XLSX or PDF",
		Example: "  worklogctl report export --year 2025 --month 6 --format xlsx --out june.xlsx",
		RunE: func(cmd *cobra.Command, args []string) error {
			var file report.ExportFile
			err := withReportService(cmd.Context(), opts, flags.eves, func(svc report.ReportService) error {
				var err error
				file, err = svc.Export(cmd.Context(), report.ExportRequest{
					EmployeeReportRequest: flags.request(),
					Format:                format,
				})
				return err
			})
			if err != nil {
				return err
			}

			if out == "" {
				out = file.Filename
			}
			if out == "-" {
				_, err = cmd.OutOrStdout().Write(file.Content)
				return err
			}
			if err := os.WriteFile(out, file.Content, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%d bytes)\n", out, len(file.Content))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&format, "format", string(report.FormatCSV), "csv, xlsx or pdf")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file, - for stdout (defaults to the report file name)")
	return cmd
}

func newReportTallyCmd(opts *globalOptions) *cobra.Command {
	var flags reportFlags

	cmd := &cobra.Command{
		Use:   "tally",
		Short: "Print the vacation workday total of every employee",
		RunE: func(cmd *cobra.Command, args []string) error {
			var tallies []report.EmployeeVacationTally
			err := withReportService(cmd.Context(), opts, flags.eves, func(svc report.ReportService) error {
				var err error
				tallies, err = svc.Tally(cmd.Context(), flags.request())
				return err
			})
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "EMPLOYEE\tWORKDAYS")
			for _, t := range tallies {
				fmt.Fprintf(tw, "%s\t%d\n", t.EmployeeID, t.TotalWorkdays)
			}
			return tw.Flush()
		},
	}

	flags.register(cmd)
	return cmd
}

func withReportService(ctx context.Context, opts *globalOptions, eves bool, fn func(report.ReportService) error) error {
	if err := opts.requireDatabase(); err != nil {
		return err
	}
	loc, err := opts.location()
	if err != nil {
		return err
	}
	base, err := workdayService.LoadBaseCalendar(config.CalendarConfig{File: opts.calendarFile})
	if err != nil {
		return err
	}

	db, err := database.NewPostgreSQLDB(ctx, opts.databaseURL, database.PoolOptions{MaxConns: 2, MinConns: 1})
	if err != nil {
		return err
	}
	defer db.Close()

	workdaySvc := workdayService.NewWorkdayService(postgresql.NewHolidayRepository(db), base, eves, loc)
	svc := reportService.NewReportService(postgresql.NewReportRepository(db, loc), workdaySvc, report.DefaultPolicy())
	return fn(svc)
}
