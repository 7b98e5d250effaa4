package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/popcorn/internal/adapter"
	"github.com/mmcdole/popcorn/internal/adapter/omdb"
	"github.com/mmcdole/popcorn/internal/service"
	"github.com/mmcdole/popcorn/internal/store"
	"github.com/mmcdole/popcorn/internal/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Version is set at build time via -ldflags
var Version = "dev"

var errNotTerminal = errors.New("popcorn needs an interactive terminal")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:           "popcorn",
		Short:         "Search movies and keep a rated watch-list",
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return errNotTerminal
			}
			return run(configFile)
		},
	}
	cmd.SetVersionTemplate("popcorn {{.Version}}\n")
	cmd.Flags().StringVarP(&configFile, "config", "c", "", "config file (default is ~/.config/popcorn/config.yaml)")

	return cmd
}

func run(configFile string) error {
	// Load configuration
	cfg, err := adapter.LoadConfig(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Setup logger
	logger, closer, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = adapter.NullLogger()
	} else {
		defer closer.Close()
	}
	slog.SetDefault(logger)

	logger.Info("starting popcorn", "version", Version)

	// Open the watch-list store
	st, err := store.NewWatchListStore(cfg.Store.Path, cfg.Store.Key)
	if err != nil {
		return fmt.Errorf("failed to open watch-list: %w", err)
	}
	defer func() {
		if err := st.Close(); err != nil {
			logger.Error("failed to close watch-list store", "error", err)
		}
	}()
	logger.Info("watch-list store opened", "path", cfg.Store.Path, "key", cfg.Store.Key)

	// Create catalog client
	client, err := omdb.NewClient(cfg.Catalog.URL, cfg.Catalog.APIKey, omdb.Options{
		Timeout:    cfg.Catalog.Timeout,
		SearchSize: cfg.Cache.SearchSize,
		SearchTTL:  cfg.Cache.SearchTTL,
		DetailTTL:  cfg.Cache.DetailTTL,
	}, logger)
	if err != nil {
		return fmt.Errorf("failed to create catalog client: %w", err)
	}

	// Create services
	watchList, err := service.NewWatchListService(st, logger)
	if err != nil {
		return fmt.Errorf("failed to load watch-list: %w", err)
	}
	session := service.NewSession(client, watchList, service.SessionConfig{
		MinQuery:     cfg.UI.MinQuery,
		DefaultTitle: cfg.UI.DefaultTitle,
	}, logger)

	// Run the TUI
	p := tea.NewProgram(
		tui.NewModel(session, logger),
		tea.WithAltScreen(),
	)

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	session.Shutdown()
	logger.Info("shutting down")
	return nil
}
