package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/catalog-admin-service/internal/adapters/store/sqlite"
	"github.com/jsamuelsen11/catalog-admin-service/internal/platform/config"
	"github.com/jsamuelsen11/catalog-admin-service/internal/platform/logging"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	profile   string
	configDir string
	dbPath    string
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:           "catalogctl",
		Short:         "Operator tools for the catalog admin service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		profile = "local"
	}
	cmd.PersistentFlags().StringVar(&flags.profile, "profile", profile, "Config profile (defaults to $APP_PROFILE)")
	cmd.PersistentFlags().StringVar(&flags.configDir, "config-dir", "configs", "Directory holding the config YAML files")
	cmd.PersistentFlags().StringVar(&flags.dbPath, "db", "", "SQLite database path (overrides store.path)")

	cmd.AddCommand(
		newMigrateCmd(flags),
		newReconciliationCmd(flags),
		newMenuCmd(flags),
	)
	return cmd
}

// openDB loads the profile and opens the SQLite database it names.
func openDB(ctx context.Context, flags *globalFlags) (*sqlite.DB, *slog.Logger, error) {
	cfg, err := config.Load(flags.profile, config.WithConfigDir(flags.configDir))
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	logger := logging.New(cfg.Log.Level, "text", os.Stderr)

	path := flags.dbPath
	if path == "" {
		if cfg.Store.Backend != "sqlite" {
			return nil, nil, fmt.Errorf("profile %q uses the %s store; pass --db to pick a database", flags.profile, cfg.Store.Backend)
		}
		path = cfg.Store.Path
	}

	db, err := sqlite.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("opened database", slog.String("path", path))
	return db, logger, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
