package main

import (
	"fmt"

	"github.com/YossiBuhnik/WorkLog1/internal/pkg/database"
	"github.com/spf13/cobra"
)

func newMigrateCmd(opts *globalOptions) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending SQL migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.requireDatabase(); err != nil {
				return err
			}
			db, err := database.NewPostgreSQLDB(cmd.Context(), opts.databaseURL, database.PoolOptions{MaxConns: 2, MinConns: 1})
			if err != nil {
				return err
			}
			defer db.Close()

			applied, err := db.Migrate(cmd.Context(), dir)
			if err != nil {
				return err
			}
			if len(applied) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "database is up to date")
				return nil
			}
			for _, name := range applied {
				fmt.Fprintln(cmd.OutOrStdout(), "applied", name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", envOr("MIGRATIONS_DIR", "migrations"), "Directory of .sql migration files")
	return cmd
}
