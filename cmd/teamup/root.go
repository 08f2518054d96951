// ABOUTME: Root Cobra command and global flags
// ABOUTME: Loads configuration and opens the directory store for every command

package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Aditya-web3/hack-team-up-now/internal/config"
	"github.com/Aditya-web3/hack-team-up-now/internal/db"
	"github.com/Aditya-web3/hack-team-up-now/internal/directory"
	"github.com/Aditya-web3/hack-team-up-now/internal/identity"
	"github.com/Aditya-web3/hack-team-up-now/internal/logging"
	"github.com/Aditya-web3/hack-team-up-now/internal/service"
)

var (
	dbPath       string
	configPath   string
	identityFlag string

	cfg    *config.Config
	store  directory.Store
	svc    *service.Service
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "teamup",
	Short: "Find hackathon teammates and message them",
	Long: `
████████╗███████╗ █████╗ ███╗   ███╗██╗   ██╗██████╗
╚══██╔══╝██╔════╝██╔══██╗████╗ ████║██║   ██║██╔══██╗
   ██║   █████╗  ███████║██╔████╔██║██║   ██║██████╔╝
   ██║   ██╔══╝  ██╔══██║██║╚██╔╝██║██║   ██║██╔═══╝
   ██║   ███████╗██║  ██║██║ ╚═╝ ██║╚██████╔╝██║
   ╚═╝   ╚══════╝╚═╝  ╚═╝╚═╝     ╚═╝ ╚═════╝ ╚═╝

Search developers by skill, location, hackathon, and availability,
then talk to them in direct conversations.

Without --db the directory lives in memory and resets on every run.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if configPath != "" {
			cfg, err = config.LoadFile(configPath)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return err
		}
		if dbPath != "" {
			cfg.DBPath = dbPath
		}

		logger = logging.New(os.Stderr, cfg.LogLevel)

		store, err = openStore(cmd.Context(), cfg.DBPath)
		if err != nil {
			return err
		}
		svc = service.New(store, service.WithLogger(logger))
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store != nil {
			return store.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "SQLite database file (seeded on first use)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&identityFlag, "as", "", "act as this user id")
}

func openStore(ctx context.Context, path string) (directory.Store, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if path == "" {
		logger.Debug("using in-memory directory")
		return directory.NewMemoryStore(directory.Seed()), nil
	}
	logger.Debug("opening database", "path", path)
	return db.Open(ctx, path, directory.Seed())
}

// currentUser is the id acting as "me" for this invocation.
func currentUser() string {
	return identity.CurrentUserID(identityFlag, cfg)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
