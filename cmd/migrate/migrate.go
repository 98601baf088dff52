package migrate

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/cobra"
)

func GetMigrateCmd(dbURL string, logger *slog.Logger) *cobra.Command {
	var down bool
	var source string

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := migrate.New(source, dbURL)
			if err != nil {
				return fmt.Errorf("failed to initialize migrations: %w", err)
			}
			defer m.Close()

			if down {
				err := m.Down()
				switch {
				case errors.Is(err, migrate.ErrNoChange):
					logger.Info("no migrations to rollback")
					return nil
				case err != nil && strings.Contains(err.Error(), "dirty"):
					logger.Warn("database is in a dirty state, forcing version fix")
					if err := m.Force(0); err != nil {
						return fmt.Errorf("failed to force version: %w", err)
					}
					return m.Down()
				case err != nil:
					return fmt.Errorf("failed to apply down migrations: %w", err)
				}
				logger.Info("migrations rolled back")
				return nil
			}

			if err := m.Up(); err != nil {
				if errors.Is(err, migrate.ErrNoChange) {
					logger.Info("no new migrations to apply")
					return nil
				}
				return fmt.Errorf("failed to apply up migrations: %w", err)
			}

			logger.Info("migrations applied")
			return nil
		},
	}

	migrateCmd.Flags().BoolVarP(&down, "down", "d", false, "Rollback migrations")
	migrateCmd.Flags().StringVar(&source, "source", "file://migrations", "Migrations source URL")

	return migrateCmd
}
