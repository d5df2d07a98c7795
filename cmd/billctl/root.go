package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmynk/billtracker/internal/config"
	"github.com/mmynk/billtracker/internal/service"
	"github.com/mmynk/billtracker/internal/storage/sqlite"
	"github.com/mmynk/billtracker/pkg/logging"
)

var (
	flagDBPath  string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:           "billctl",
	Short:         "Track recurring monthly bills",
	Long:          "Manage bills, payment status and the monthly dashboard from the terminal.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		level := "warn"
		if flagVerbose {
			level = "debug"
		}
		logging.Configure(os.Stderr, level, "text")
	},
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "  Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "SQLite database path (default from config or DB_PATH)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
}

// withService loads config, opens the store and runs fn with a BillService.
func withService(fn func(svc *service.BillService, cfg *config.Config) error, opts ...service.Option) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	dbPath := cfg.Database.Path
	if flagDBPath != "" {
		dbPath = flagDBPath
	}

	store, err := sqlite.New(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer store.Close()

	opts = append([]service.Option{
		service.WithClock(cfg.Now),
		service.WithHorizon(cfg.Dashboard.HorizonDays),
	}, opts...)
	return fn(service.NewBillService(store, opts...), cfg)
}
