package main

import (
	"github.com/spf13/cobra"

	"admanager/internal/config"
	"admanager/internal/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the postgres schema migrations",
	Long: `Apply the embedded migrations to the database in PSQL_ADDRESS.
Only the postgres storage driver needs a schema.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			return err
		}
		cmd.Println("migrations applied")
		return nil
	},
}
