package commands

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/realgold/showcase/internal/tui"
)

func runCarousel(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	deck, err := env.decks.Load(ctx)
	if err != nil {
		return fmt.Errorf("load deck: %w", err)
	}
	app, err := tui.New(ctx, env.cfg, deck, tui.Deps{Recorder: env.impressions, Logger: env.logger})
	if err != nil {
		return err
	}
	env.logger.Info("carousel running", "slides", deck.Len(), "auto_delay", env.cfg.Carousel.AutoDelay)

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run carousel: %w", err)
	}
	app.Orchestrator().Teardown()
	return nil
}
