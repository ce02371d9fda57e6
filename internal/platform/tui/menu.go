package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/tui-clicker/internal/economy"
	"github.com/vovakirdan/tui-clicker/internal/save"
)

// MenuChoice is what the player picked in the start menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoiceContinue
	ChoiceNewRun
	ChoiceRuns
	ChoiceQuit
)

// MenuItem is one selectable line of the menu.
type MenuItem struct {
	Choice MenuChoice
	Title  string
	Detail string
}

// MenuKeyMap defines the key bindings of the start menu.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Runs   key.Binding
	Quit   key.Binding
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k", "w"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j", "s"), key.WithHelp("↓/j", "down")),
		Select: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		Runs:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "fastest runs")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// MenuModel is the Bubble Tea model for the start menu.
type MenuModel struct {
	title    string
	items    []MenuItem
	cursor   int
	width    int
	height   int
	keys     MenuKeyMap
	selected MenuChoice
}

// NewMenuModel creates the start menu. When existing is non-nil a Continue
// entry describing the save is offered first.
func NewMenuModel(title, currencyName string, existing *save.SaveData, width, height int) MenuModel {
	var items []MenuItem
	if existing != nil {
		items = append(items, MenuItem{
			Choice: ChoiceContinue,
			Title:  "Continue",
			Detail: saveSummary(existing, currencyName),
		})
	}
	items = append(items,
		MenuItem{Choice: ChoiceNewRun, Title: "New run"},
		MenuItem{Choice: ChoiceRuns, Title: "Fastest runs"},
		MenuItem{Choice: ChoiceQuit, Title: "Quit"},
	)

	return MenuModel{
		title:  title,
		items:  items,
		width:  width,
		height: height,
		keys:   DefaultMenuKeyMap(),
	}
}

// saveSummary describes a save in one line.
func saveSummary(d *save.SaveData, currencyName string) string {
	s := fmt.Sprintf("%s %s, stage %d",
		economy.Format(d.Player.Currency, true), currencyName, d.Player.Stage)
	if !d.SavedAt.IsZero() {
		s += ", saved " + humanize.Time(d.SavedAt)
	}
	return s
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.selected = ChoiceQuit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			m.selected = m.items[m.cursor].Choice
		case key.Matches(msg, m.keys.Runs):
			m.selected = ChoiceRuns
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(m.title), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Title
		style := lipgloss.NewStyle()
		if i == m.cursor {
			line = "> " + item.Title
			style = activeStyle
		}
		b.WriteString(centerText(style.Render(line), m.width))
		b.WriteString("\n")
		if item.Detail != "" {
			b.WriteString(centerText(dimStyle.Render(item.Detail), m.width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Runs  |  Q: Quit"
	b.WriteString(centerText(dimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the picked entry, or ChoiceNone.
func (m MenuModel) Selected() MenuChoice {
	return m.selected
}
