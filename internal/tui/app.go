package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/realgold/showcase/internal/carousel"
	"github.com/realgold/showcase/internal/config"
	"github.com/realgold/showcase/internal/surface"
)

// Recorder persists settled slides. service.ImpressionService satisfies it.
type Recorder interface {
	Record(ctx context.Context, index int, tabLabel string, trigger carousel.Trigger, at time.Time) error
}

// Deps are the optional collaborators of the App.
type Deps struct {
	Recorder Recorder
	Logger   *slog.Logger
	Clock    carousel.Clock // defaults to carousel.SystemClock
}

// App hosts the carousel inside the bubbletea event loop. Every mutation of
// the Orchestrator happens in Update.
type App struct {
	ctx      context.Context
	cfg      config.Config
	deck     *carousel.Deck
	orch     *carousel.Orchestrator
	clock    carousel.Clock
	recorder Recorder
	logger   *slog.Logger
	events   chan carousel.Event
	keys     keyMap
	help     help.Model

	width     int
	status    string
	prompting bool
	prompt    string
	quitting  bool
}

type (
	frameMsg    time.Time
	timerMsg    struct{ ev carousel.Event }
	recordedMsg struct{ settled carousel.TransitionSettled }
	errMsg      struct{ error }
)

func New(ctx context.Context, cfg config.Config, deck *carousel.Deck, deps Deps) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}
	if deps.Clock == nil {
		deps.Clock = carousel.SystemClock{}
	}
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.DiscardHandler)
	}
	a := &App{
		ctx:      ctx,
		cfg:      cfg,
		deck:     deck,
		clock:    deps.Clock,
		recorder: deps.Recorder,
		logger:   deps.Logger,
		events:   make(chan carousel.Event, 4),
		keys:     defaultKeyMap(),
		help:     help.New(),
		width:    cfg.UI.Width,
	}
	orch, err := carousel.New(deck,
		carousel.WithClock(deps.Clock),
		carousel.WithAutoDelay(cfg.Carousel.AutoDelay),
		carousel.WithSink(a.deliver),
		carousel.WithLogger(deps.Logger),
	)
	if err != nil {
		return nil, fmt.Errorf("build carousel: %w", err)
	}
	a.orch = orch
	return a, nil
}

// deliver runs on the timer goroutine; it only hands the event to the loop.
func (a *App) deliver(ev carousel.Event) {
	select {
	case a.events <- ev:
	case <-a.ctx.Done():
	}
}

func (a *App) Orchestrator() *carousel.Orchestrator { return a.orch }

func (a *App) Init() tea.Cmd {
	a.orch.Start()
	initial := carousel.TransitionSettled{Trigger: carousel.TriggerInitial, At: a.clock.Now()}
	return tea.Batch(a.tickCmd(), a.listenCmd(), a.recordCmd(initial))
}

func (a *App) tickCmd() tea.Cmd {
	return tea.Tick(a.cfg.Carousel.FrameInterval(), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (a *App) listenCmd() tea.Cmd {
	return func() tea.Msg {
		select {
		case ev := <-a.events:
			return timerMsg{ev: ev}
		case <-a.ctx.Done():
			return nil
		}
	}
}

func (a *App) recordCmd(s carousel.TransitionSettled) tea.Cmd {
	if a.recorder == nil {
		return nil
	}
	slide, err := a.deck.At(s.To)
	if err != nil {
		return func() tea.Msg { return errMsg{err} }
	}
	return func() tea.Msg {
		if err := a.recorder.Record(a.ctx, s.To, slide.TabLabel, s.Trigger, s.At); err != nil {
			return errMsg{err}
		}
		return recordedMsg{settled: s}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.quitting {
		return a, nil
	}
	switch m := msg.(type) {
	case tea.KeyMsg:
		if a.prompting {
			return a.handlePromptKey(m)
		}
		return a.handleKey(m)
	case tea.WindowSizeMsg:
		a.width = m.Width
		if a.cfg.UI.Width > 0 {
			a.width = min(m.Width, a.cfg.UI.Width)
		}
		a.help.Width = a.width
	case frameMsg:
		settled := a.orch.Handle(carousel.FrameTick{At: a.clock.Now()})
		return a, tea.Batch(append(a.settleCmds(settled), a.tickCmd())...)
	case timerMsg:
		settled := a.orch.Handle(m.ev)
		return a, tea.Batch(append(a.settleCmds(settled), a.listenCmd())...)
	case recordedMsg:
		a.logger.Debug("impression recorded", "slide", m.settled.To, "trigger", m.settled.Trigger)
	case errMsg:
		a.status = "error: " + m.Error()
		a.logger.Error("carousel", "err", m.error)
	}
	return a, nil
}

func (a *App) settleCmds(events []carousel.Event) []tea.Cmd {
	var cmds []tea.Cmd
	for _, ev := range events {
		if s, ok := ev.(carousel.TransitionSettled); ok {
			cmds = append(cmds, a.recordCmd(s))
		}
	}
	return cmds
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	a.status = ""
	switch {
	case key.Matches(m, a.keys.Quit):
		a.orch.Teardown()
		a.quitting = true
		return a, tea.Quit
	case key.Matches(m, a.keys.Select):
		n := int(m.String()[0] - '1')
		a.reportRequest(a.orch.RequestTransition(n))
	case key.Matches(m, a.keys.Prev):
		a.reportRequest(a.orch.Previous())
	case key.Matches(m, a.keys.Next):
		a.reportRequest(a.orch.Next())
	case key.Matches(m, a.keys.Jump):
		a.prompting = true
		a.prompt = ""
	}
	return a, nil
}

func (a *App) handlePromptKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.Type {
	case tea.KeyEsc:
		a.prompting = false
	case tea.KeyCtrlC:
		a.prompting = false
		return a.handleKey(m)
	case tea.KeyEnter:
		a.prompting = false
		i, ok := matchTab(a.deck.TabLabels(), a.prompt)
		if !ok {
			a.status = fmt.Sprintf("no tab matches %q", a.prompt)
			return a, nil
		}
		a.reportRequest(a.orch.RequestTransition(i))
	case tea.KeyBackspace:
		if r := []rune(a.prompt); len(r) > 0 {
			a.prompt = string(r[:len(r)-1])
		}
	case tea.KeyRunes, tea.KeySpace:
		a.prompt += string(m.Runes)
	}
	return a, nil
}

func (a *App) reportRequest(err error) {
	if err == nil {
		return
	}
	var idx *carousel.InvalidIndexError
	if errors.As(err, &idx) {
		a.status = fmt.Sprintf("no slide %d", idx.Index+1)
		a.logger.Debug("request rejected", "index", idx.Index, "count", idx.Count)
		return
	}
	a.status = "error: " + err.Error()
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}
	return surface.Render(surface.View{
		Deck:      a.deck,
		Snapshot:  a.orch.Snapshot(a.clock.Now()),
		Width:     a.width,
		Status:    a.status,
		Prompting: a.prompting,
		Prompt:    a.prompt,
		Help:      a.help.View(a.keys),
	})
}
