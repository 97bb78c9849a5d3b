package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/webdeveloper7191-del/time-trail-guide-sub014/cmd/cli/commands"
	"github.com/webdeveloper7191-del/time-trail-guide-sub014/internal/config"
	"github.com/webdeveloper7191-del/time-trail-guide-sub014/pkg/postgres"
	"github.com/webdeveloper7191-del/time-trail-guide-sub014/pkg/utils/logging"
)

var (
	configPath string

	// app is shared with every command; initApp fills it in before any RunE
	// executes.
	app = &commands.AppContext{}
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rosterctl",
		Short: "Roster compliance and cost engine",
		Long:  `Evaluate shifts against scheduling rules, audit whole rosters, and report weekly cost against budget.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Logger != nil {
				app.Logger.Sync()
			}
			if app.PG != nil {
				app.PG.Close()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: roster_engine.yaml)")

	rootCmd.AddCommand(
		commands.EvaluateShiftCmd(app),
		commands.AuditRosterCmd(app),
		commands.CostReportCmd(app),
		commands.ServeCmd(app),
		commands.MigrateCmd(app),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up config, logger, and the database store. Config comes first
// because the logger's level and file location are configured there; a config
// load failure surfaces through cobra's own error printing.
func initApp() error {
	var err error
	app.Ctx = context.Background()

	if configPath != "" {
		app.Cfg, err = config.LoadFromPath(configPath)
	} else {
		app.Cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	app.Logger, err = logging.InitLogger("rosterctl", app.Cfg.Logging.Level, app.Cfg.Logging.Dir)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Info("Starting application")
	app.Logger.Debug("Configuration loaded successfully")

	app.Logger.Info("Connecting to database")
	app.PG, err = postgres.NewDB(app.Ctx, app.Cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	app.Store = app.PG
	app.Logger.Info("Database connected")

	return nil
}
