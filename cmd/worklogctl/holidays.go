package main

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/YossiBuhnik/WorkLog1/internal/config"
	"github.com/YossiBuhnik/WorkLog1/internal/domain/workday"
	"github.com/YossiBuhnik/WorkLog1/internal/pkg/database"
	"github.com/YossiBuhnik/WorkLog1/internal/repository/postgresql"
	workdayService "github.com/YossiBuhnik/WorkLog1/internal/service/workday"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newHolidaysCmd(opts *globalOptions) *cobra.Command {
	var (
		year int
		eves bool
	)

	cmd := &cobra.Command{
		Use:   "holidays",
		Short: "List the holidays of a year",
		Long: `List the holidays of a year from the holiday file or the built-in table.
With --database-url the office-managed holidays are merged in.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			var svc workday.Service
			if opts.databaseURL == "" {
				s, err := offlineWorkdayService(opts, eves)
				if err != nil {
					return err
				}
				svc = s
			} else {
				db, err := database.NewPostgreSQLDB(ctx, opts.databaseURL, database.PoolOptions{MaxConns: 2, MinConns: 1})
				if err != nil {
					return err
				}
				defer db.Close()
				loc, err := opts.location()
				if err != nil {
					return err
				}
				base, err := workdayService.LoadBaseCalendar(config.CalendarConfig{File: opts.calendarFile})
				if err != nil {
					return err
				}
				svc = workdayService.NewWorkdayService(postgresql.NewHolidayRepository(db), base, eves, loc)
			}

			res, err := svc.ListHolidays(ctx, year)
			if err != nil {
				return err
			}
			if len(res.Holidays) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "no holidays listed for %d\n", year)
				return nil
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, h := range res.Holidays {
				fmt.Fprintf(tw, "%s\t%s\n", h.Date, h.Name)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().IntVar(&year, "year", time.Now().Year(), "Calendar year")
	cmd.Flags().BoolVar(&eves, "eves", false, "Include the eve of each holiday")
	cmd.AddCommand(newHolidaysImportCmd(opts))
	return cmd
}

func newHolidaysImportCmd(opts *globalOptions) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Store the holidays of a YAML file in the database",
		Long: `Store the holidays of a YAML file in the database in one transaction.
Dates that are already stored are skipped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.requireDatabase(); err != nil {
				return err
			}
			cal, err := workday.LoadCalendarFile(file)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			db, err := database.NewPostgreSQLDB(ctx, opts.databaseURL, database.PoolOptions{MaxConns: 2, MinConns: 1})
			if err != nil {
				return err
			}
			defer db.Close()

			added, skipped, err := importHolidays(ctx, db, cal)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d holidays, %d already stored\n", added, skipped)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML holiday table")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func importHolidays(ctx context.Context, db *database.DB, cal workday.HolidayCalendar) (added, skipped int, err error) {
	repo := postgresql.NewHolidayRepository(db)

	err = postgresql.WithTransaction(ctx, db, func(ctx context.Context) error {
		stored, err := repo.ListAll(ctx)
		if err != nil {
			return err
		}
		known := make(map[string]bool, len(stored))
		for _, h := range stored {
			known[h.Date] = true
		}

		for _, year := range cal.Years() {
			for _, h := range cal.Holidays(year) {
				if known[h.Date] {
					skipped++
					continue
				}
				h.ID = uuid.New().String()
				if _, err := repo.Create(ctx, h); err != nil {
					return fmt.Errorf("holiday %s: %w", h.Date, err)
				}
				known[h.Date] = true
				added++
			}
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return added, skipped, nil
}
