package cmd

import (
	"context"
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"
)

var (
	migrateCmd = &cobra.Command{
		RunE:  runMigration,
		Use:   "migrate",
		Short: "apply the SQL migrations under db/migrations",
	}
	migrateRollback bool
	migrateDir      string
)

func init() {
	migrateCmd.Flags().BoolVarP(&migrateRollback, "rollback", "r", false, "undo the most recent migration instead of applying")
	migrateCmd.PersistentFlags().StringVarP(&migrateDir, "dir", "d", "db/migrations", "sql migrations directory")
}

func runMigration(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(".")
	if err != nil {
		return err
	}

	db, err := goose.OpenDBWithDriver("pgx", cfg.Database.Source)
	if err != nil {
		return fmt.Errorf("goose: open database: %w", err)
	}
	defer db.Close()

	goose.SetTableName("schema_migrations")

	direction := "up"
	if migrateRollback {
		direction = "down"
	}

	if err := goose.RunContext(context.Background(), direction, db, migrateDir); err != nil {
		return fmt.Errorf("goose %s: %w", direction, err)
	}
	return nil
}
