package tui

import (
	"context"
	"errors"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/time/rate"

	"github.com/vovakirdan/tui-clicker/internal/core"
	"github.com/vovakirdan/tui-clicker/internal/games/clicker"
	"github.com/vovakirdan/tui-clicker/internal/save"
	"github.com/vovakirdan/tui-clicker/internal/storage"
)

// storeTimeout bounds a single save or run write from the game loop.
const storeTimeout = 2 * time.Second

// RunRecorder stores won runs.
type RunRecorder interface {
	RecordRun(ctx context.Context, run storage.Run) (int64, error)
}

// Options configures a Model.
type Options struct {
	Runtime    core.RuntimeConfig
	Saves      *save.Manager // nil disables saving
	Runs       RunRecorder   // nil disables the leaderboard
	Slot       string
	PlayerName string
	Fresh      bool // ignore an existing save
	Embedded   bool // quitting returns to the caller instead of ending the program
	Logger     *log.Logger
	Renderer   *Renderer
}

// Model is the Bubble Tea model running one clicker session.
type Model struct {
	game       *clicker.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	saves      *save.Manager
	runs       RunRecorder
	slot       string
	playerName string
	logger     *log.Logger
	renderer   *Renderer
	keys       *KeyMapper
	help       help.Model
	limiter    *rate.Limiter

	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	sinceSave  float64
	embedded   bool
	quitting   bool
	backToMenu bool
}

// NewModel creates a Bubble Tea model for the game, resets it and restores
// the slot's save unless opts.Fresh is set.
func NewModel(game *clicker.Game, opts Options) Model {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Slot == "" {
		opts.Slot = save.DefaultSlot
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Renderer == nil {
		opts.Renderer = NewRenderer(nil)
	}

	limit := rate.Inf
	burst := 1
	if cps := game.Config().Game.MaxClicksPerSecond; cps > 0 {
		limit = rate.Limit(cps)
		burst = max(1, int(math.Ceil(cps)))
	}

	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, gameHeight(cfg.ScreenH)),
		config:     cfg,
		saves:      opts.Saves,
		runs:       opts.Runs,
		slot:       opts.Slot,
		playerName: opts.PlayerName,
		logger:     opts.Logger,
		renderer:   opts.Renderer,
		keys:       NewKeyMapper(DefaultKeyMap()),
		help:       h,
		limiter:    rate.NewLimiter(limit, burst),
		inputFrame: core.NewInputFrame(),
		embedded:   opts.Embedded,
	}

	rt := cfg
	rt.ScreenH = gameHeight(cfg.ScreenH)
	game.Reset(rt)
	if !opts.Fresh {
		m.restore()
	}
	m.gameState = game.State()
	return m
}

// gameHeight leaves the last terminal row for the help bar.
func gameHeight(h int) int {
	return max(h-1, 0)
}

func (m *Model) restore() {
	if m.saves == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	data, err := m.saves.Load(ctx, m.slot)
	if err != nil {
		if !errors.Is(err, save.ErrNoSave) {
			m.logger.Warn("could not load save, starting fresh", "slot", m.slot, "error", err)
		}
		return
	}
	p, stats := data.Restore()
	m.game.Restore(p, stats)
	m.logger.Info("save restored", "slot", m.slot, "saved_at", data.SavedAt)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if !isPress(msg) {
			return m, nil
		}
		// Only presses on the click target count against the click rate.
		if m.game.IsClickTarget(msg.X, msg.Y) && !m.allowClick() {
			return m, nil
		}
		m.keys.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, _ := m.keys.MapKey(msg)
	if action == core.ActionClick && !m.allowClick() {
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.save("quit")
		if m.embedded {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// allowClick applies the manual click rate limit.
func (m Model) allowClick() bool {
	return m.limiter.Allow()
}

// handleResize adapts the screen without resetting progress.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, gameHeight(msg.Height))
	m.game.Resize(msg.Width, gameHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := tickSeconds(m.lastTick, now, m.config.TickRate)
	m.lastTick = now

	result := m.game.Step(m.inputFrame, dt)
	m.gameState = result.State

	for _, e := range result.Events {
		switch e {
		case core.EventSaveRequest:
			m.save("manual")
		case core.EventWon:
			m.recordRun()
			m.save("won")
		case core.EventRestart:
			m.save("restart")
		}
	}

	m.sinceSave += dt
	if every := m.game.Config().Game.AutosaveSeconds; every > 0 && m.sinceSave >= every {
		m.save("autosave")
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// save writes the current progress. Failures are logged; the game goes on.
func (m *Model) save(reason string) {
	m.sinceSave = 0
	if m.saves == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	if _, err := m.saves.Save(ctx, m.slot, m.game.Player(), m.game.Stats()); err != nil {
		m.logger.Warn("save failed", "slot", m.slot, "reason", reason, "error", err)
		return
	}
	m.logger.Debug("saved", "slot", m.slot, "reason", reason)
}

func (m *Model) recordRun() {
	if m.runs == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	stats := m.game.Stats()
	run := storage.Run{
		Player:    m.playerName,
		Elapsed:   stats.WonAt,
		Clicks:    stats.Clicks,
		WinAmount: m.game.Config().Game.WinAmount,
	}
	if _, err := m.runs.RecordRun(ctx, run); err != nil {
		m.logger.Warn("could not record run", "error", err)
		return
	}
	m.logger.Info("run won", "player", run.Player, "elapsed", run.Elapsed, "clicks", run.Clicks)
}

// State returns the last reported game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if the player ended the program.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if an embedded game was left.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	helpLine := m.renderer.Style(core.ColorGray).Render(m.help.ShortHelpView(m.keys.Keys().ShortHelp()))
	return m.renderer.RenderScreen(m.screen) + "\n" + helpLine
}

// Run starts the Bubble Tea program for the game.
func Run(game *clicker.Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
