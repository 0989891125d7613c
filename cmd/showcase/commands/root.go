package commands

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/realgold/showcase/internal/config"
	"github.com/realgold/showcase/internal/database"
	"github.com/realgold/showcase/internal/database/repository"
	"github.com/realgold/showcase/internal/logging"
	"github.com/realgold/showcase/internal/service"
)

var (
	cfgPath  string
	deckPath string
	env      *environment
)

// environment is what PersistentPreRunE builds for every command.
type environment struct {
	cfg         config.Config
	logger      *slog.Logger
	db          *sql.DB
	decks       *service.DeckService
	impressions *service.ImpressionService
	closers     []func() error
}

func (e *environment) close() error {
	var first error
	for i := len(e.closers) - 1; i >= 0; i-- {
		if err := e.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func Execute() error {
	root := &cobra.Command{
		Use:          "showcase",
		Short:        "Real Gold property carousel",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd.Context())
			if err != nil {
				return err
			}
			env = e
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCarousel(cmd.Context())
		},
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default $SHOWCASE_CONFIG or ~/.config/showcase/config.toml)")
	root.PersistentFlags().StringVar(&deckPath, "deck", "", "TOML deck file; overrides carousel.deck_path and the database")

	root.AddCommand(snapshotCmd(), deckCmd(), impressionsCmd())
	err := root.ExecuteContext(context.Background())
	if env != nil {
		if cerr := env.close(); err == nil {
			err = cerr
		}
	}
	return err
}

func setup(ctx context.Context) (*environment, error) {
	var (
		cfg config.Config
		err error
	)
	if cfgPath != "" {
		cfg, err = config.LoadFile(cfgPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if deckPath != "" {
		cfg.Carousel.DeckPath = deckPath
	}

	e := &environment{cfg: cfg}
	logger, closeLog, err := logging.OpenFile(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	e.logger = logger
	e.closers = append(e.closers, closeLog)

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		_ = e.close()
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}
	if err := database.RunMigrations(cfg.Database.Path); err != nil {
		_ = e.close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		_ = e.close()
		return nil, fmt.Errorf("open db: %w", err)
	}
	e.db = db
	e.closers = append(e.closers, db.Close)

	if err := database.SeedDefaults(ctx, db); err != nil {
		_ = e.close()
		return nil, fmt.Errorf("seed defaults: %w", err)
	}

	e.decks = &service.DeckService{Slides: repository.NewSlideRepo(db), DeckPath: cfg.Carousel.DeckPath}
	e.impressions = &service.ImpressionService{Impressions: repository.NewImpressionRepo(db)}
	logger.Debug("environment ready", "db", cfg.Database.Path, "deck", cfg.Carousel.DeckPath)
	return e, nil
}
