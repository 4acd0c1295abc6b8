// Command drivepick selects in-stock drives by manufacturer and serves the
// selection and inventory API.
//
//	@title			DrivePick API
//	@version		0.1.0
//	@description	Selects in-stock drives whose model mentions a manufacturer, and manages the drive inventory.
//	@BasePath		/api/v1
package main

//go:generate swag init -g cmd/drivepick/main.go -d ../../ -o ../../docs

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/HerbHall/drivepick/internal/config"
	"github.com/HerbHall/drivepick/internal/inventory"
	"github.com/HerbHall/drivepick/internal/store"
)

// app carries the state shared by every subcommand once the root
// command's pre-run has loaded it.
type app struct {
	configPath string
	verbose    bool

	settings config.Settings
	logger   *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "drivepick",
		Short: "Select available drives by manufacturer",
		Long: `drivepick picks the in-stock drives whose model description mentions
one of the requested manufacturers.

Catalogs come from the built-in listing, the SQLite inventory, local sysfs
discovery, or a YAML/JSON document passed to "select --file".`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to YAML config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newServeCmd(a),
		newSelectCmd(a),
		newScanCmd(a),
		newImportCmd(a),
		newExportCmd(a),
		newBackupCmd(a),
		newRestoreCmd(a),
		newVersionCmd(),
	)
	return root
}

// init loads configuration and builds the logger.
func (a *app) init() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.settings, err = cfg.Settings()
	if err != nil {
		return err
	}

	zc := zap.NewProductionConfig()
	level := zapcore.InfoLevel
	if err := level.UnmarshalText([]byte(strings.ToLower(a.settings.Log.Level))); err != nil {
		return fmt.Errorf("invalid log.level %q: %w", a.settings.Log.Level, err)
	}
	if a.verbose {
		level = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	logger, err := zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger
	return nil
}

// openInventory opens the configured database and the inventory
// repository on it. The caller closes the returned store.
func (a *app) openInventory(ctx context.Context) (*store.SQLiteStore, *inventory.SQLiteRepository, error) {
	s, err := store.New(a.settings.Database.Path)
	if err != nil {
		return nil, nil, err
	}
	repo, err := inventory.NewSQLiteRepository(ctx, s, nil)
	if err != nil {
		s.Close()
		return nil, nil, err
	}
	return s, repo, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
