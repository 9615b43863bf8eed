package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-WorkoutForm/internal/config"
	"github.com/m04kA/SMC-WorkoutForm/internal/domain"
	applicationRepo "github.com/m04kA/SMC-WorkoutForm/internal/infra/storage/application"
	"github.com/m04kA/SMC-WorkoutForm/internal/integrations/holidayapi"
	"github.com/m04kA/SMC-WorkoutForm/internal/service/calendar"
	"github.com/m04kA/SMC-WorkoutForm/internal/service/holidays"
	"github.com/m04kA/SMC-WorkoutForm/pkg/logger"
	"github.com/m04kA/SMC-WorkoutForm/pkg/metrics"
)

func calendarCmd() *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Показать сетку месяца с доступностью дней",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			location, err := cfg.Form.Location()
			if err != nil {
				return fmt.Errorf("failed to load timezone: %w", err)
			}

			cursor := time.Now().In(location)
			if month != "" {
				cursor, err = time.Parse(domain.MonthFormat, month)
				if err != nil {
					return fmt.Errorf("invalid --month %q, expected YYYY-MM", month)
				}
			}

			source := newHolidaySource(cfg)
			if err := source.Load(cmd.Context(), cursor.Year()); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: holidays not loaded, only Sundays are blocked: %v\n", err)
			}

			grid := calendar.BuildGrid(domain.NewCalendarState(cursor), source.Rules())
			return calendar.Render(cmd.OutOrStdout(), grid)
		},
	}

	cmd.Flags().StringVarP(&month, "month", "m", "", "Month YYYY-MM (default: current month)")
	return cmd
}

func holidaysCmd() *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "holidays",
		Short: "Загрузить и показать список праздников",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			if year == 0 {
				location, err := cfg.Form.Location()
				if err != nil {
					return fmt.Errorf("failed to load timezone: %w", err)
				}
				year = time.Now().In(location).Year()
			}

			source := newHolidaySource(cfg)
			if err := source.Load(cmd.Context(), year); err != nil {
				return err
			}

			entries, _ := source.Entries()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "DATE\tTYPE\tNAME\n")
			for _, h := range entries {
				fmt.Fprintf(w, "%s\t%s\t%s\n", h.DateString(), h.Type, h.Name)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVarP(&year, "year", "y", 0, "Year (default: current year)")
	return cmd
}

func applicationsCmd() *cobra.Command {
	var (
		status string
		limit  uint64
	)

	cmd := &cobra.Command{
		Use:   "applications",
		Short: "Показать последние попытки отправки заявок",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if !cfg.Database.Enabled {
				return fmt.Errorf("database is disabled in %s", configPath)
			}

			switch domain.ApplicationStatus(status) {
			case "", domain.ApplicationSent, domain.ApplicationFailed:
			default:
				return fmt.Errorf("invalid --status %q, expected sent or failed", status)
			}

			db, err := openDB(cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			apps, err := applicationRepo.NewRepository(db).ListRecent(cmd.Context(), domain.ApplicationStatus(status), limit)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "ID\tCREATED\tSTATUS\tNAME\tEMAIL\tDATE\tTIME\tERROR\n")
			for _, app := range apps {
				errText := ""
				if app.Error != nil {
					errText = *app.Error
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s %s\t%s\t%s\t%s\t%s\n",
					app.ID,
					app.CreatedAt.Format(time.RFC3339),
					app.Status,
					app.Name, app.Surname,
					app.Email,
					app.SelectedDate.Format(domain.DateFormat),
					app.SelectedTime,
					errText,
				)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&status, "status", "s", "", "Filter by status: sent or failed")
	cmd.Flags().Uint64VarP(&limit, "limit", "n", 20, "Max rows")
	return cmd
}

func newHolidaySource(cfg *config.Config) *holidays.Source {
	client := holidayapi.NewClient(
		cfg.HolidayAPI.URL,
		cfg.HolidayAPI.APIKey,
		time.Duration(cfg.HolidayAPI.Timeout)*time.Second,
		logger.NewNop(),
	)
	return holidays.NewSource(client, cfg.HolidayAPI.Country, (*metrics.Metrics)(nil), logger.NewNop())
}
