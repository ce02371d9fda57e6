// Package clicker implements the incremental clicker game: manual clicks,
// passive income, an upgrade shop, stage unlocks with bonus targets, and a
// win amount. The game is pure logic driven by Step and drawn by Render;
// the platform supplies input frames, tick durations and persistence.
package clicker

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/vovakirdan/tui-clicker/internal/config"
	"github.com/vovakirdan/tui-clicker/internal/core"
	"github.com/vovakirdan/tui-clicker/internal/economy"
	"github.com/vovakirdan/tui-clicker/internal/particles"
	"github.com/vovakirdan/tui-clicker/internal/registry"
)

// ID is the game identifier used for saves and run records.
const ID = "clicker"

// messageSeconds is how long a status message stays visible.
const messageSeconds = 2.5

// pulseSeconds is how long the click area stays highlighted after a click.
const pulseSeconds = 0.12

// PurchaseOutcome is the result of a shop purchase attempt.
type PurchaseOutcome int

const (
	OutcomeBought PurchaseOutcome = iota
	OutcomeUnknown
	OutcomeMaxLevel
	OutcomeInsufficientFunds
)

// String returns a short description of the outcome.
func (o PurchaseOutcome) String() string {
	switch o {
	case OutcomeBought:
		return "bought"
	case OutcomeUnknown:
		return "unknown upgrade"
	case OutcomeMaxLevel:
		return "max level"
	case OutcomeInsufficientFunds:
		return "insufficient funds"
	default:
		return "?"
	}
}

// Stats is the run bookkeeping persisted next to the player.
type Stats struct {
	Elapsed      float64 `json:"elapsed"`       // seconds of play since the first click
	Clicks       int64   `json:"clicks"`        // manual clicks
	Won          bool    `json:"won"`           // win amount reached
	WonAt        float64 `json:"won_at"`        // elapsed seconds when the run was won
	TimerStarted bool    `json:"timer_started"` // first click happened
}

// Game is one clicker session. It is not safe for concurrent use.
type Game struct {
	cfg     config.ClickerConfig
	catalog *registry.Catalog
	rt      core.RuntimeConfig
	layout  layout

	shop []*economy.Upgrade // shop order

	player    *economy.Player
	particles *particles.System
	bonus     *bonusField

	stats     Stats
	tick      uint64
	cursor    int
	paused    bool
	winScreen bool
	incomeAcc float64
	pulse     float64

	message      string
	messageColor core.Color
	messageTTL   float64

	events []core.Event
}

// New creates a game over the given configuration and catalog. Reset must be
// called before the first Step.
func New(cfg config.ClickerConfig, catalog *registry.Catalog) *Game {
	return &Game{
		cfg:     cfg,
		catalog: catalog,
		shop:    shopOrder(catalog.ByCategory(), catalog.Categories()),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.cfg.Game.Title == "" {
		return "Clicker"
	}
	return g.cfg.Game.Title
}

// Reset starts a fresh run.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rt = rt
	g.layout = computeLayout(rt.ScreenW, rt.ScreenH)

	g.player = economy.NewPlayer()
	g.particles = particles.NewSystem(particleConfig(g.cfg.Particles), rt.Seed)
	g.bonus = newBonusField(g.cfg.Bonus, rt.Seed+1)

	g.stats = Stats{}
	g.tick = 0
	g.cursor = 0
	g.paused = false
	g.winScreen = false
	g.incomeAcc = 0
	g.pulse = 0
	g.message = ""
	g.messageTTL = 0
}

// Restore replaces the player and run statistics, typically from a save.
// Transient effects are cleared.
func (g *Game) Restore(p *economy.Player, stats Stats) {
	if p == nil {
		p = economy.NewPlayer()
	}
	g.player = p
	g.stats = stats
	g.particles.Clear()
	g.bonus.clear()
	g.incomeAcc = 0
	g.winScreen = false
	g.setMessage("Welcome back!", core.ColorBrightCyan)
}

// Resize adapts the layout to new terminal dimensions without touching
// progress.
func (g *Game) Resize(w, h int) {
	g.rt.ScreenW = w
	g.rt.ScreenH = h
	g.layout = computeLayout(w, h)
	g.bonus.clampTo(g.layout.field)
}

// Player exposes the session's player for persistence.
func (g *Game) Player() *economy.Player {
	return g.player
}

// Catalog returns the upgrades offered in the shop.
func (g *Game) Catalog() *registry.Catalog {
	return g.catalog
}

// Stats returns the run bookkeeping.
func (g *Game) Stats() Stats {
	return g.stats
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.ClickerConfig {
	return g.cfg
}

// State returns the status reported to the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		Won:     g.stats.Won,
		Paused:  g.paused || g.winScreen,
		Elapsed: g.stats.Elapsed,
		Clicks:  g.stats.Clicks,
	}
}

// Step advances the game by dt seconds after applying the input. Within a
// tick the order is: input, passive income, particles, bonus targets, win
// check. Paused ticks only process pause, save and win screen input.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	g.tick++
	g.events = g.events[:0]
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		dt = 0
	}

	if in.Has(core.ActionSave) {
		g.emit(core.EventSaveRequest)
	}

	if g.winScreen {
		g.stepWinScreen(in)
		return g.result()
	}

	if in.Count(core.ActionPause)%2 == 1 {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	g.handleInput(in)
	g.earnIncome(dt)
	g.particles.Update(dt)
	g.updateBonus(dt)

	if g.stats.TimerStarted {
		g.stats.Elapsed += dt
	}
	g.checkWin()

	g.pulse = math.Max(0, g.pulse-dt)
	if g.messageTTL > 0 {
		g.messageTTL -= dt
		if g.messageTTL <= 0 {
			g.message = ""
		}
	}

	return g.result()
}

func (g *Game) result() core.StepResult {
	return core.StepResult{
		State:  g.State(),
		Events: append([]core.Event(nil), g.events...),
	}
}

func (g *Game) emit(e core.Event) {
	g.events = append(g.events, e)
}

// stepWinScreen handles input while the win overlay is shown.
func (g *Game) stepWinScreen(in core.InputFrame) {
	switch {
	case in.Has(core.ActionConfirm):
		g.Reset(g.rt)
		g.emit(core.EventRestart)
	case in.Has(core.ActionBack):
		g.winScreen = false
		g.setMessage("Endless mode: keep clicking!", core.ColorBrightYellow)
	}
}

func (g *Game) handleInput(in core.InputFrame) {
	cx, cy := g.layout.clickArea.Center()
	for i := 0; i < in.Count(core.ActionClick); i++ {
		g.click(cx, cy)
	}

	for _, pt := range in.Presses {
		g.handlePress(pt)
	}

	n := len(g.shop)
	if n > 0 {
		for i := 0; i < in.Count(core.ActionUp); i++ {
			g.cursor = (g.cursor - 1 + n) % n
		}
		for i := 0; i < in.Count(core.ActionDown); i++ {
			g.cursor = (g.cursor + 1) % n
		}
	}

	if in.Select > 0 && in.Select <= n {
		g.cursor = in.Select - 1
		g.buySelected()
	}
	for i := 0; i < in.Count(core.ActionBuy); i++ {
		g.buySelected()
	}

	for i := 0; i < in.Count(core.ActionCatch); i++ {
		if t, ok := g.bonus.catchFirst(g.layout.field.Inset(1)); ok {
			g.awardBonus(t)
		}
	}
}

// ClickArea returns the region a mouse press must land in to click.
func (g *Game) ClickArea() core.Rect {
	return g.layout.clickArea
}

// IsClickTarget reports whether a press at (x, y) counts as a manual click.
// Bonus targets drawn over the click area take the press instead.
func (g *Game) IsClickTarget(x, y int) bool {
	pt := core.Point{X: x, Y: y}
	return !g.layout.tooSmall && !g.bonus.hitAt(pt) && g.layout.clickArea.ContainsPoint(pt)
}

// handlePress routes a mouse press to the element under it.
func (g *Game) handlePress(pt core.Point) {
	if g.layout.tooSmall {
		return
	}
	if t, ok := g.bonus.catchAt(pt); ok {
		g.awardBonus(t)
		return
	}
	if g.layout.clickArea.ContainsPoint(pt) {
		g.click(pt.X, pt.Y)
		return
	}
	if idx, ok := g.shopIndexAt(pt); ok {
		g.cursor = idx
		g.buySelected()
	}
}

func (g *Game) click(x, y int) {
	gained := g.player.Click()
	g.stats.Clicks++
	g.stats.TimerStarted = true
	g.pulse = pulseSeconds

	fx, fy := float64(x), float64(y)
	g.particles.Burst(fx, fy)
	g.particles.Label(fx, fy-1, "+"+economy.Format(gained, true), core.ColorBrightGreen)
}

func (g *Game) awardBonus(t target) {
	amount := decimal.NewFromInt(g.cfg.Bonus.Value)
	g.player.Grant(amount)
	g.particles.Label(t.x, float64(t.y)-1, "+"+economy.Format(amount, true), core.ColorBrightYellow)
	g.emit(core.EventBonusCaught)
}

func (g *Game) buySelected() {
	if g.cursor < 0 || g.cursor >= len(g.shop) {
		return
	}
	g.Purchase(g.shop[g.cursor].ID())
}

// Selected returns the upgrade under the shop cursor.
func (g *Game) Selected() (*economy.Upgrade, bool) {
	if g.cursor < 0 || g.cursor >= len(g.shop) {
		return nil, false
	}
	return g.shop[g.cursor], true
}

// Purchase buys the next level of the upgrade with the given id.
func (g *Game) Purchase(id string) PurchaseOutcome {
	u, ok := g.catalog.Get(id)
	if !ok {
		g.setMessage(fmt.Sprintf("Unknown upgrade %q", id), core.ColorBrightRed)
		return OutcomeUnknown
	}

	cost := u.NextCost(g.player)
	if err := g.player.CheckPurchase(u); err != nil {
		switch {
		case errors.Is(err, economy.ErrMaxLevel):
			g.setMessage(u.Name()+" is at max level", core.ColorGray)
			return OutcomeMaxLevel
		default:
			short := cost.Sub(g.player.Currency())
			g.setMessage(fmt.Sprintf("Need %s more %s for %s",
				economy.Format(short, true), g.cfg.Game.CurrencyName, u.Name()), core.ColorBrightRed)
			return OutcomeInsufficientFunds
		}
	}

	g.player.Purchase(u)
	g.setMessage(fmt.Sprintf("Bought %s (Lvl %d)", u.Name(), g.player.Level(u.ID())), core.ColorBrightGreen)
	g.emit(core.EventPurchase)
	return OutcomeBought
}

// earnIncome credits passive income for the tick.
func (g *Game) earnIncome(dt float64) {
	if g.player.AutoClickPower().Sign() <= 0 {
		return
	}

	switch g.cfg.Game.IncomeMode {
	case config.IncomeAccumulated:
		g.incomeAcc += dt
		for g.incomeAcc >= 1 {
			g.player.AutoClick(1)
			g.incomeAcc--
		}
	default:
		g.player.AutoClick(dt)
	}
}

func (g *Game) updateBonus(dt float64) {
	if g.player.Stage() < g.cfg.Bonus.EnabledStage {
		return
	}
	g.bonus.update(dt, g.layout.field.Inset(1))
}

func (g *Game) checkWin() {
	if g.stats.Won || g.cfg.Game.WinAmount <= 0 {
		return
	}
	if g.player.Currency().LessThan(decimal.NewFromInt(g.cfg.Game.WinAmount)) {
		return
	}

	g.stats.Won = true
	g.stats.WonAt = g.stats.Elapsed
	g.winScreen = true
	g.emit(core.EventWon)
}

func (g *Game) setMessage(msg string, c core.Color) {
	g.message = msg
	g.messageColor = c
	g.messageTTL = messageSeconds
}

func particleConfig(c config.ParticleConfig) particles.Config {
	return particles.Config{
		PerClick:    c.PerClick,
		LifetimeMin: c.LifetimeMin,
		LifetimeMax: c.LifetimeMax,
		SpeedMin:    c.SpeedMin,
		SpeedMax:    c.SpeedMax,
		SizeMin:     c.SizeMin,
		SizeMax:     c.SizeMax,
		Gravity:     c.Gravity,
		TextSpeed:   c.TextSpeed,
		Max:         c.Max,
	}
}
