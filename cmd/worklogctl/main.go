package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const appVersion = "0.3.0"

type globalOptions struct {
	timezone     string
	calendarFile string
	databaseURL  string
	verbose      bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:           "worklogctl",
		Short:         "Workday accounting and report tooling for WorkLog",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			_ = godotenv.Load()
			level := slog.LevelWarn
			if opts.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
			if opts.databaseURL == "" {
				opts.databaseURL = os.Getenv("DATABASE_URL")
			}
		},
	}

	cmd.Version = appVersion
	cmd.SetVersionTemplate("worklogctl v{{.Version}}\n")

	cmd.PersistentFlags().StringVar(&opts.timezone, "tz", envOr("APP_TIMEZONE", "Asia/Jerusalem"), "Time zone that defines a calendar day")
	cmd.PersistentFlags().StringVar(&opts.calendarFile, "calendar", os.Getenv("HOLIDAY_CALENDAR_FILE"), "YAML holiday table (built-in table when empty)")
	cmd.PersistentFlags().StringVar(&opts.databaseURL, "database-url", "", "PostgreSQL URL (defaults to $DATABASE_URL)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug output to stderr")

	cmd.AddCommand(
		newWorkdaysCmd(opts),
		newHolidaysCmd(opts),
		newReportCmd(opts),
		newMigrateCmd(opts),
	)
	return cmd
}

func (o *globalOptions) location() (*time.Location, error) {
	loc, err := time.LoadLocation(o.timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid --tz %q: %w", o.timezone, err)
	}
	return loc, nil
}

func (o *globalOptions) requireDatabase() error {
	if o.databaseURL == "" {
		return fmt.Errorf("--database-url or DATABASE_URL is required")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
