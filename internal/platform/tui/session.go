package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-clicker/internal/config"
	"github.com/vovakirdan/tui-clicker/internal/core"
	"github.com/vovakirdan/tui-clicker/internal/games/clicker"
	"github.com/vovakirdan/tui-clicker/internal/registry"
	"github.com/vovakirdan/tui-clicker/internal/save"
)

// RunStore records and lists won runs.
type RunStore interface {
	RunRecorder
	RunLister
}

// SessionConfig holds everything a session needs to start games.
type SessionConfig struct {
	Game       config.ClickerConfig
	Catalog    *registry.Catalog
	Runtime    core.RuntimeConfig
	Saves      *save.Manager // nil disables saving
	Runs       RunStore      // nil disables the leaderboard
	Slot       string
	PlayerName string
	Logger     *log.Logger
	Renderer   *Renderer
}

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenRuns
)

// SessionModel manages the session flow: menu -> game or leaderboard -> menu.
// It is the top-level model for SSH sessions and the local menu command.
type SessionModel struct {
	cfg        SessionConfig
	screen     sessionScreen
	menu       MenuModel
	gameModel  *Model
	scoreboard *ScoreboardModel
	quitting   bool
}

// NewSessionModel creates a new session model starting at the menu.
func NewSessionModel(cfg SessionConfig) SessionModel {
	if cfg.Slot == "" {
		cfg.Slot = save.DefaultSlot
	}
	m := SessionModel{cfg: cfg}
	m.menu = m.newMenu()
	return m
}

func (m SessionModel) newMenu() MenuModel {
	var existing *save.SaveData
	if m.cfg.Saves != nil {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		if data, err := m.cfg.Saves.Load(ctx, m.cfg.Slot); err == nil {
			existing = data
		}
	}

	title := m.cfg.Game.Game.Title
	if title == "" {
		title = "Clicker"
	}
	return NewMenuModel(title, m.cfg.Game.Game.CurrencyName, existing, m.cfg.Runtime.ScreenW, m.cfg.Runtime.ScreenH)
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.cfg.Runtime.ScreenW = wsm.Width
		m.cfg.Runtime.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenRuns:
		return m.updateRuns(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	switch m.menu.Selected() {
	case ChoiceQuit:
		m.quitting = true
		return m, tea.Quit
	case ChoiceContinue:
		return m.startGame(false)
	case ChoiceNewRun:
		return m.startGame(true)
	case ChoiceRuns:
		var lister RunLister
		if m.cfg.Runs != nil {
			lister = m.cfg.Runs
		}
		sb := NewScoreboardModel(lister, m.cfg.Runtime.ScreenW, m.cfg.Runtime.ScreenH)
		m.scoreboard = &sb
		m.screen = screenRuns
		return m, sb.Init()
	}

	return m, cmd
}

func (m SessionModel) startGame(fresh bool) (tea.Model, tea.Cmd) {
	rt := m.cfg.Runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	opts := Options{
		Runtime:    rt,
		Saves:      m.cfg.Saves,
		Slot:       m.cfg.Slot,
		PlayerName: m.cfg.PlayerName,
		Fresh:      fresh,
		Embedded:   true,
		Logger:     m.cfg.Logger,
		Renderer:   m.cfg.Renderer,
	}
	if m.cfg.Runs != nil {
		opts.Runs = m.cfg.Runs
	}

	gm := NewModel(clicker.New(m.cfg.Game, m.cfg.Catalog), opts)
	m.gameModel = &gm
	m.screen = screenGame
	return m, gm.Init()
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.gameModel.Update(msg)
	if gm, ok := next.(Model); ok {
		m.gameModel = &gm
	}

	if m.gameModel.BackToMenu() {
		return m.backToMenu()
	}
	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

func (m SessionModel) updateRuns(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	if sb, ok := next.(ScoreboardModel); ok {
		m.scoreboard = &sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		return m.backToMenu()
	}
	return m, cmd
}

func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.gameModel = nil
	m.scoreboard = nil
	m.menu = m.newMenu()
	return m, m.menu.Init()
}

// View renders the current screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.gameModel.View()
	case screenRuns:
		return m.scoreboard.View()
	default:
		return m.menu.View()
	}
}

// RunSession starts the menu-driven session as a local program.
func RunSession(cfg SessionConfig) error {
	p := tea.NewProgram(
		NewSessionModel(cfg),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
