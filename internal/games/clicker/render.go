package clicker

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vovakirdan/tui-clicker/internal/core"
	"github.com/vovakirdan/tui-clicker/internal/economy"
)

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.layout.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderField(dst)
	g.renderShop(dst)
	g.renderStatus(dst)

	switch {
	case g.winScreen:
		g.renderWin(dst)
	case g.paused:
		g.renderOverlay(dst, core.ColorBrightYellow, "PAUSED", "", "press p to resume")
	}
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCenteredColored(y-1, "Terminal too small", core.ColorBrightRed)
	dst.DrawTextCentered(y, fmt.Sprintf("need %dx%d, have %dx%d", MinWidth, MinHeight, dst.Width(), dst.Height()))
}

func (g *Game) renderHUD(dst *core.Screen) {
	r := g.layout.hud
	dst.DrawBoxColored(r, core.ColorMagenta)
	dst.DrawTextColored(r.X+2, r.Y, " "+g.Title()+" ", core.ColorBrightMagenta)

	p := g.player
	parts := []string{
		fmt.Sprintf("%s: %s", g.cfg.Game.CurrencyName, economy.Format(p.Currency(), true)),
		fmt.Sprintf("+%s/click", economy.Format(p.ClickPower(), true)),
		fmt.Sprintf("+%s/s", economy.Format(p.AutoClickPower(), true)),
		fmt.Sprintf("Time %s", economy.FormatClock(g.stats.Elapsed)),
	}
	if goal := g.goalText(); goal != "" {
		parts = append(parts, goal)
	}

	x := r.X + 2
	colors := []core.Color{core.ColorBrightYellow, core.ColorBrightGreen, core.ColorBrightCyan, core.ColorWhite, core.ColorGray}
	for i, part := range parts {
		sep := ""
		if i > 0 {
			sep = " │ "
		}
		if x+len([]rune(sep+part)) > r.Right()-2 {
			break
		}
		dst.DrawTextColored(x, r.Y+1, sep, core.ColorGray)
		x += len([]rune(sep))
		dst.DrawTextColored(x, r.Y+1, part, colors[i%len(colors)])
		x += len([]rune(part))
	}
}

// goalText describes progress towards the win amount.
func (g *Game) goalText() string {
	if g.cfg.Game.WinAmount <= 0 {
		return ""
	}
	if g.stats.Won {
		return "Won in " + economy.FormatClock(g.stats.WonAt)
	}
	target := decimal.NewFromInt(g.cfg.Game.WinAmount)
	eta := economy.TimeToAmount(g.player.Currency(), target, g.player.AutoClickPower())
	return fmt.Sprintf("Goal %s ETA %s", economy.Format(target, true), economy.FormatTime(eta))
}

func (g *Game) renderField(dst *core.Screen) {
	f := g.layout.field
	dst.DrawBoxColored(f, core.ColorGray)
	dst.DrawTextColored(f.X+2, f.Y, fmt.Sprintf(" Stage %d ", g.player.Stage()), core.ColorGray)

	c := g.layout.clickArea
	color := core.ColorYellow
	if g.pulse > 0 {
		color = core.ColorBrightYellow
	}
	dst.DrawBoxColored(c, color)
	_, cy := c.Center()
	inner := c.Inset(1)
	dst.DrawTextIn(inner, cy-1, "$ $ $", color)
	dst.DrawTextIn(inner, cy, "CLICK ME", core.ColorBrightWhite)
	dst.DrawTextIn(inner, cy+1, "[space]", core.ColorGray)

	area := f.Inset(1)
	g.bonus.render(dst, area)
	g.particles.Render(dst, area)
}

func (g *Game) renderShop(dst *core.Screen) {
	s := g.layout.shop
	dst.DrawBoxColored(s, core.ColorCyan)
	dst.DrawTextColored(s.X+2, s.Y, " SHOP ", core.ColorBrightCyan)

	inner := s.Inset(1)
	lines := g.shopLines()
	offset := g.shopOffset(lines, inner.H)
	for row := 0; row < inner.H && offset+row < len(lines); row++ {
		y := inner.Y + row
		ln := lines[offset+row]
		switch {
		case ln.index < 0:
			drawClipped(dst, inner.X, y, inner.W, "─ "+ln.header+" ─", core.ColorGray)
		case ln.detail:
			g.renderShopDetail(dst, inner, y, ln.index)
		default:
			g.renderShopTitle(dst, inner, y, ln.index)
		}
	}
}

func (g *Game) renderShopTitle(dst *core.Screen, inner core.Rect, y, idx int) {
	u := g.shop[idx]
	level := g.player.Level(u.ID())

	marker := "  "
	color := core.ColorWhite
	if idx == g.cursor {
		marker = "▶ "
		color = core.ColorBrightWhite
	}

	lvl := fmt.Sprintf("Lv %d", level)
	if u.MaxLevel() > 0 {
		lvl = fmt.Sprintf("Lv %d/%d", level, u.MaxLevel())
	}

	title := fmt.Sprintf("%s%d %s", marker, idx+1, u.Name())
	drawClipped(dst, inner.X, y, inner.W-len(lvl)-1, title, color)
	dst.DrawTextColored(inner.Right()-len(lvl), y, lvl, core.ColorGray)
}

func (g *Game) renderShopDetail(dst *core.Screen, inner core.Rect, y, idx int) {
	u := g.shop[idx]

	var (
		text  string
		color core.Color
	)
	switch {
	case !u.Available(g.player):
		text, color = "MAXED", core.ColorGray
	case g.player.CanAfford(u):
		text, color = "Cost: "+economy.Format(u.NextCost(g.player), true), core.ColorBrightGreen
	default:
		text, color = "Cost: "+economy.Format(u.NextCost(g.player), true), core.ColorRed
	}
	drawClipped(dst, inner.X+4, y, inner.W-4, text, color)
}

func (g *Game) renderStatus(dst *core.Screen) {
	r := g.layout.status
	if g.message != "" {
		drawClipped(dst, r.X+1, r.Y, r.W-2, g.message, g.messageColor)
		return
	}

	u, ok := g.Selected()
	if !ok {
		return
	}
	text := u.Name() + ": " + u.NextLevelDescription(g.player, g.cfg.Game.CurrencyName)
	if u.Description() != "" && u.Available(g.player) {
		text = u.Name() + ": " + u.Description() + ". " + u.NextLevelDescription(g.player, g.cfg.Game.CurrencyName)
	}
	drawClipped(dst, r.X+1, r.Y, r.W-2, text, core.ColorGray)
}

func (g *Game) renderWin(dst *core.Screen) {
	amount := economy.Format(decimal.NewFromInt(g.cfg.Game.WinAmount), false)
	g.renderOverlay(dst, core.ColorBrightYellow,
		"Sweet mullet dude, you win!",
		fmt.Sprintf("You reached %s %s in %s", amount, g.cfg.Game.CurrencyName, economy.FormatClock(g.stats.WonAt)),
		"esc: keep clicking   r: new run",
	)
}

// renderOverlay draws a centered box with up to three lines of text.
func (g *Game) renderOverlay(dst *core.Screen, c core.Color, lines ...string) {
	w := 0
	for _, ln := range lines {
		w = max(w, len([]rune(ln)))
	}
	w = min(w+6, dst.Width())
	h := len(lines) + 4

	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)
	dst.DrawRect(box, ' ')
	dst.DrawBoxColored(box, c)
	for i, ln := range lines {
		color := core.ColorWhite
		if i == 0 {
			color = c
		}
		dst.DrawTextIn(box.Inset(1), box.Y+2+i, ln, color)
	}
}

// drawClipped writes text left-aligned, cutting it at width cells.
func drawClipped(dst *core.Screen, x, y, width int, text string, c core.Color) {
	if width <= 0 {
		return
	}
	runes := []rune(text)
	if len(runes) > width {
		runes = append(runes[:max(width-1, 0)], '…')
	}
	dst.DrawTextColored(x, y, strings.TrimRight(string(runes), " "), c)
}
