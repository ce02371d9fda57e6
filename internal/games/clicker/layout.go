package clicker

import (
	"github.com/vovakirdan/tui-clicker/internal/core"
	"github.com/vovakirdan/tui-clicker/internal/economy"
)

// Minimum terminal size the game can be drawn in.
const (
	MinWidth  = 60
	MinHeight = 16
)

const (
	shopWidth  = 34
	hudHeight  = 3
	clickAreaW = 22
	clickAreaH = 7
)

// layout is the screen split into the game's regions.
type layout struct {
	screen    core.Rect
	hud       core.Rect
	field     core.Rect // left area with the click target and bonus targets
	clickArea core.Rect
	shop      core.Rect
	status    core.Rect
	tooSmall  bool
}

func computeLayout(w, h int) layout {
	l := layout{screen: core.NewRect(0, 0, w, h)}
	if w < MinWidth || h < MinHeight {
		l.tooSmall = true
		return l
	}

	var rest core.Rect
	l.hud, rest = l.screen.SplitTop(hudHeight)
	body, status := rest.SplitTop(rest.H - 1)
	l.status = status
	l.field, l.shop = body.SplitLeft(body.W - shopWidth)

	inner := l.field.Inset(1)
	cw := min(clickAreaW, inner.W)
	ch := min(clickAreaH, inner.H)
	l.clickArea = core.NewRect(inner.X+(inner.W-cw)/2, inner.Y+(inner.H-ch)/2, cw, ch)
	return l
}

// shopOrder lists the upgrades grouped by category, which is the order the
// shop shows them and the cursor walks them.
func shopOrder(groups map[string][]*economy.Upgrade, categories []string) []*economy.Upgrade {
	var out []*economy.Upgrade
	for _, cat := range categories {
		out = append(out, groups[cat]...)
	}
	return out
}

// shopLine is one row of the shop panel.
type shopLine struct {
	index  int    // position in shop order, -1 for category headers
	header string // category name for header rows
	detail bool   // second row of an upgrade entry
}

// shopLines lays out the shop panel rows. Category headers are shown only
// when the catalog has named categories.
func (g *Game) shopLines() []shopLine {
	categories := g.catalog.Categories()
	showHeaders := len(categories) > 1 || (len(categories) == 1 && categories[0] != "")

	var lines []shopLine
	idx := 0
	groups := g.catalog.ByCategory()
	for _, cat := range categories {
		if showHeaders {
			name := cat
			if name == "" {
				name = "General"
			}
			lines = append(lines, shopLine{index: -1, header: name})
		}
		for range groups[cat] {
			lines = append(lines, shopLine{index: idx}, shopLine{index: idx, detail: true})
			idx++
		}
	}
	return lines
}

// shopOffset returns the first visible line so the cursor entry is on screen.
func (g *Game) shopOffset(lines []shopLine, height int) int {
	if height <= 0 || len(lines) <= height {
		return 0
	}
	last := 0
	for i, ln := range lines {
		if ln.index == g.cursor {
			last = i
		}
	}
	return core.Clamp(last-height+1, 0, len(lines)-height)
}

// shopIndexAt maps a screen cell to the upgrade entry drawn there.
func (g *Game) shopIndexAt(pt core.Point) (int, bool) {
	inner := g.layout.shop.Inset(1)
	if !inner.ContainsPoint(pt) {
		return 0, false
	}

	lines := g.shopLines()
	i := g.shopOffset(lines, inner.H) + pt.Y - inner.Y
	if i < 0 || i >= len(lines) || lines[i].index < 0 {
		return 0, false
	}
	return lines[i].index, true
}
