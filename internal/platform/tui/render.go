package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-clicker/internal/core"
)

// ansiColors maps core.Color to terminal color codes.
var ansiColors = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// Renderer turns screen buffers into styled strings. SSH sessions need a
// renderer bound to the session's output so color detection matches the
// remote terminal.
type Renderer struct {
	styles map[core.Color]lipgloss.Style
	plain  lipgloss.Style
}

// NewRenderer creates a renderer. A nil lipgloss renderer uses the default
// (local stdout) one.
func NewRenderer(r *lipgloss.Renderer) *Renderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	styles := make(map[core.Color]lipgloss.Style, len(ansiColors))
	for c, code := range ansiColors {
		styles[c] = r.NewStyle().Foreground(lipgloss.Color(code))
	}
	return &Renderer{styles: styles, plain: r.NewStyle()}
}

// Style returns the style for a cell color.
func (r *Renderer) Style(c core.Color) lipgloss.Style {
	if s, ok := r.styles[c]; ok {
		return s
	}
	return r.plain
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color are rendered as one run, and trailing
// blank cells of each row are dropped.
func (r *Renderer) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		end := s.Width()
		for end > 0 {
			c := s.GetCell(end-1, y)
			if c.Rune != ' ' || c.Color != core.ColorDefault {
				break
			}
			end--
		}

		x := 0
		for x < end {
			color := s.GetCell(x, y).Color

			var run strings.Builder
			for x < end {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(r.Style(color).Render(run.String()))
		}
	}
	return sb.String()
}
