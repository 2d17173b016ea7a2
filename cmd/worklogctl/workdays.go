package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/YossiBuhnik/WorkLog1/internal/config"
	"github.com/YossiBuhnik/WorkLog1/internal/domain/workday"
	workdayService "github.com/YossiBuhnik/WorkLog1/internal/service/workday"
	"github.com/spf13/cobra"
)

func newWorkdaysCmd(opts *globalOptions) *cobra.Command {
	var (
		req  workday.CountWorkdaysRequest
		eves bool
		days bool
	)

	cmd := &cobra.Command{
		Use:   "workdays",
		Short: "Count workdays between two dates (inclusive)",
		Example: `  worklogctl workdays --start 2025-06-01 --end 2025-06-05
  worklogctl workdays --start 2025-09-20 --end 2025-10-10 --clip-start 2025-10-01 --clip-end 2025-10-31 --days`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := offlineWorkdayService(opts, eves)
			if err != nil {
				return err
			}
			res, err := svc.CountWorkdays(cmd.Context(), req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s .. %s: %d workdays\n", res.Start, res.End, res.Workdays)
			if !days {
				return nil
			}
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, d := range res.Days {
				mark := "-"
				if d.Workday {
					mark = "workday"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", d.Date, d.Weekday, mark, d.Holiday)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&req.Start, "start", "", "First day YYYY-MM-DD")
	cmd.Flags().StringVar(&req.End, "end", "", "Last day YYYY-MM-DD (defaults to --start)")
	cmd.Flags().StringVar(&req.ClipStart, "clip-start", "", "Count only days on or after this date")
	cmd.Flags().StringVar(&req.ClipEnd, "clip-end", "", "Count only days on or before this date")
	cmd.Flags().BoolVar(&eves, "eves", false, "Treat the day before each holiday as a holiday too")
	cmd.Flags().BoolVar(&days, "days", false, "Print the per-day breakdown")
	_ = cmd.MarkFlagRequired("start")
	return cmd
}

// offlineWorkdayService works from the holiday file or the built-in table,
// without touching the database.
func offlineWorkdayService(opts *globalOptions, eves bool) (workday.Service, error) {
	loc, err := opts.location()
	if err != nil {
		return nil, err
	}
	base, err := workdayService.LoadBaseCalendar(config.CalendarConfig{File: opts.calendarFile})
	if err != nil {
		return nil, err
	}
	return workdayService.NewWorkdayService(nil, base, eves, loc), nil
}
