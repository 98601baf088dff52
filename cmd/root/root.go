package root

import (
	"fmt"
	"log/slog"

	"github.com/dinerozz/snippet-analytics-backend/cmd/migrate"
	"github.com/dinerozz/snippet-analytics-backend/cmd/report"
	"github.com/dinerozz/snippet-analytics-backend/config"
	"github.com/dinerozz/snippet-analytics-backend/server"
	"github.com/spf13/cobra"
)

func GetRootCmd(config *config.Config, logger *slog.Logger) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "snippet-analytics-backend",
		Short: "Snippet sentiment analytics",
	}

	dbURL := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DB.User,
		config.DB.Password,
		config.DB.Host,
		config.DB.Port,
		config.DB.DBName,
		config.DB.SSLMode)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Run: func(cmd *cobra.Command, args []string) {
			server.RunServer(config, logger)
		},
	})

	rootCmd.AddCommand(migrate.GetMigrateCmd(dbURL, logger))
	rootCmd.AddCommand(report.GetReportCmd(config, logger))

	return rootCmd
}
