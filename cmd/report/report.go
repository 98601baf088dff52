package report

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/dinerozz/snippet-analytics-backend/config"
	"github.com/dinerozz/snippet-analytics-backend/internal/analytics"
	"github.com/dinerozz/snippet-analytics-backend/internal/entity"
	"github.com/dinerozz/snippet-analytics-backend/internal/repository"
	service "github.com/dinerozz/snippet-analytics-backend/internal/service/analytics_service"
	"github.com/dinerozz/snippet-analytics-backend/pkg/utils"
	"github.com/dinerozz/snippet-analytics-backend/server"
	"github.com/fatih/color"
	"github.com/gofrs/uuid"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var (
	criticalColor = color.New(color.FgRed, color.Bold)
	headingColor  = color.New(color.FgCyan, color.Bold)
)

func GetReportCmd(cfg *config.Config, logger *slog.Logger) *cobra.Command {
	var (
		userID    string
		teamID    string
		window    string
		metric    string
		threshold float64
	)

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Print a user or team series as a table",
		RunE: func(cmd *cobra.Command, args []string) error {
			if (userID == "") == (teamID == "") {
				return fmt.Errorf("exactly one of --user or --team is required")
			}

			m, err := analytics.ParseMetric(metric)
			if err != nil {
				return err
			}

			db, err := repository.NewRepository(cfg.DB)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer db.Close()

			srv, cache := server.NewAnalyticsService(cfg, db, logger)
			if cache != nil {
				defer cache.Close()
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
			defer cancel()

			query := service.SeriesQuery{
				Window:    entity.WindowSpec{Kind: entity.WindowKind(window)},
				Metric:    m,
				Trendline: true,
				Weekday:   true,
			}
			if cmd.Flags().Changed("threshold") {
				query.Critical = true
				query.Threshold = &threshold
			}

			var result *analytics.Result
			if userID != "" {
				id, err := uuid.FromString(userID)
				if err != nil {
					return fmt.Errorf("invalid user id: %w", err)
				}
				result, err = srv.UserSeries(ctx, id, query)
				if err != nil {
					return err
				}
			} else {
				id, err := uuid.FromString(teamID)
				if err != nil {
					return fmt.Errorf("invalid team id: %w", err)
				}
				query.Critical = true
				result, err = srv.TeamSeries(ctx, id, query)
				if err != nil {
					return err
				}
			}

			criticalAt := cfg.Analytics.CriticalThreshold
			if query.Threshold != nil {
				criticalAt = *query.Threshold
			}
			return Render(cmd.OutOrStdout(), result, criticalAt)
		},
	}

	reportCmd.Flags().StringVar(&userID, "user", "", "User ID")
	reportCmd.Flags().StringVar(&teamID, "team", "", "Team ID")
	reportCmd.Flags().StringVarP(&window, "window", "w", string(entity.WindowLastMonth), "lastWeek, lastMonth or lastYear")
	reportCmd.Flags().StringVarP(&metric, "metric", "m", string(analytics.MetricSentiment), "sentiment, green, orange, red or length")
	reportCmd.Flags().Float64VarP(&threshold, "threshold", "t", 0, "Critical threshold override")

	return reportCmd
}

// Render writes the raw series with its trendline next to it, then the weekday averages.
// Points under criticalAt are highlighted.
func Render(w io.Writer, result *analytics.Result, criticalAt float64) error {
	if result.Empty {
		_, err := fmt.Fprintln(w, "No snippets in this window.")
		return err
	}

	var raw, trend, weekday entity.Series
	for _, s := range result.Series {
		switch s.Kind {
		case entity.SeriesRaw:
			raw = s
		case entity.SeriesTrend:
			trend = s
		case entity.SeriesDayOfWeekAverage:
			weekday = s
		}
	}

	if _, err := headingColor.Fprintf(w, "%s (%s)\n", raw.Label, utils.FormatPeriod(result.Window.Start.Time, result.Window.End.Time)); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header("Date", "Value", "Trend")
	for i, p := range raw.Points {
		value := formatValue(p.Value)
		if p.Value < criticalAt {
			value = criticalColor.Sprint(value)
		}
		trendValue := ""
		if i < len(trend.Points) {
			trendValue = formatValue(trend.Points[i].Value)
		}
		if err := table.Append([]string{p.Date.String(), value, trendValue}); err != nil {
			return fmt.Errorf("failed to add row for %s: %w", p.Date, err)
		}
	}
	if err := table.Render(); err != nil {
		return err
	}

	if len(weekday.Points) > 0 {
		days := tablewriter.NewWriter(w)
		days.Header("Day", "Average")
		for _, p := range weekday.Points {
			if err := days.Append([]string{p.Label, formatValue(p.Value)}); err != nil {
				return fmt.Errorf("failed to add row for %s: %w", p.Label, err)
			}
		}
		if err := days.Render(); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "Average: %s\n", formatValue(result.AverageScore))
	return err
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
