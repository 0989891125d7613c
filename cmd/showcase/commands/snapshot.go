package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/realgold/showcase/internal/carousel"
	"github.com/realgold/showcase/internal/config"
	"github.com/realgold/showcase/internal/surface"
)

// snapshotEpoch pins the manual clock so frames are reproducible.
var snapshotEpoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func snapshotCmd() *cobra.Command {
	var (
		at    time.Duration
		goTo  int
		width int
	)
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render one frame of the carousel at a point in time",
		RunE: func(cmd *cobra.Command, args []string) error {
			deck, err := env.decks.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("load deck: %w", err)
			}
			if width <= 0 {
				width = env.cfg.UI.Width
			}
			out, err := renderFrame(deck, env.cfg.Carousel, at, goTo, width)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().DurationVar(&at, "at", 0, "time since start to render")
	cmd.Flags().IntVar(&goTo, "goto", -1, "slide index (0-based) to request at start; -1 for none")
	cmd.Flags().IntVar(&width, "width", 0, "render width (default ui.width, then 80)")
	return cmd
}

// renderFrame replays the carousel on a manual clock: start, optionally
// request goTo, then advance frame by frame to at.
func renderFrame(deck *carousel.Deck, cfg config.CarouselConfig, at time.Duration, goTo, width int) (string, error) {
	if width <= 0 {
		width = 80
	}
	clock := carousel.NewManualClock(snapshotEpoch)
	var queue []carousel.Event
	orch, err := carousel.New(deck,
		carousel.WithClock(clock),
		carousel.WithAutoDelay(cfg.AutoDelay),
		carousel.WithSink(func(ev carousel.Event) { queue = append(queue, ev) }),
	)
	if err != nil {
		return "", err
	}
	defer orch.Teardown()

	orch.Start()
	if goTo >= 0 {
		if err := orch.RequestTransition(goTo); err != nil {
			return "", err
		}
	}

	step := cfg.FrameInterval()
	end := snapshotEpoch.Add(at)
	for clock.Now().Before(end) {
		clock.Advance(min(step, end.Sub(clock.Now())))
		for len(queue) > 0 {
			ev := queue[0]
			queue = queue[1:]
			orch.Handle(ev)
		}
		orch.Handle(carousel.FrameTick{At: clock.Now()})
	}

	return surface.Render(surface.View{
		Deck:     deck,
		Snapshot: orch.Snapshot(clock.Now()),
		Width:    width,
	}), nil
}
