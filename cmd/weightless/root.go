package main

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"weightless/internal/config"
	"weightless/internal/gpx"
	"weightless/internal/service"
	"weightless/internal/store"
	"weightless/internal/tracker"
	"weightless/internal/tui"
)

var (
	cfg *config.Config
	db  *store.Store

	replayFile    string
	replaySpeedup float64
)

var rootCmd = &cobra.Command{
	Use:   "weightless",
	Short: "Track your weight, trends and activity from the terminal",
	Long: `WeightLess is a personal weight tracker. It keeps your weigh-ins in a
local SQLite database and shows progress, weekly and monthly trends,
projections and a live GPS activity tracker in a terminal UI.

Run without arguments to open the UI.

Examples:
  weightless
  weightless report
  weightless export --output backup.json
  weightless import backup.json`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if errors.Is(err, config.ErrNoConfig) {
			if err := config.CreateExample(); err != nil {
				return fmt.Errorf("creating default config: %w", err)
			}
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			configDir, _ := config.GetConfigDir()
			return fmt.Errorf("invalid config (edit %s/config.json): %w", configDir, err)
		}

		db, err = store.Open()
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if db != nil {
			return db.Close()
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

func runTUI() error {
	querySvc := service.NewQueryService(db)

	// Desktop builds have no GPS or accelerometer hardware; the tracker
	// runs on a replayed GPX track when one is given.
	var location tracker.LocationProvider
	if replayFile != "" {
		doc, err := gpx.Parse(replayFile)
		if err != nil {
			return err
		}
		provider, err := gpx.NewReplayProvider(doc)
		if err != nil {
			return err
		}
		provider.Speedup = replaySpeedup
		location = provider
	}

	activitySvc := service.NewActivityService(db, location, nil, cfg.Tracker.FallbackWeightKg)

	// Background weigh-in reminders
	stop := make(chan struct{})
	defer close(stop)
	if cfg.Reminders.Enabled {
		interval := time.Duration(cfg.Reminders.IntervalHours * float64(time.Hour))
		reminders := service.NewReminderService(db, service.DesktopNotifier{}, interval)
		go reminders.Run(stop)
	}

	app := tui.NewApp(db, querySvc, activitySvc, cfg.Display)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}

func init() {
	rootCmd.Flags().StringVar(&replayFile, "replay", "", "GPX file to replay as the tracker's GPS source")
	rootCmd.Flags().Float64Var(&replaySpeedup, "speedup", 10, "replay time compression factor")
}
