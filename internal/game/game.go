// Package game is the Ebiten front end: a scrollable one-page layout whose
// interactions spawn particles.
package game

import (
	"errors"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/sparkle/internal/config"
	"github.com/iburimskiy/sparkle/internal/effects"
	"github.com/iburimskiy/sparkle/internal/frame"
	"github.com/iburimskiy/sparkle/internal/notify"
	"github.com/iburimskiy/sparkle/internal/particle"
	"github.com/iburimskiy/sparkle/internal/render"
)

const (
	// revealBottomMargin shrinks the viewport bottom for reveal checks.
	revealBottomMargin = 100.0
	revealThreshold    = 0.1
	statsThreshold     = 0.5
	shadowScrollY      = 50.0
	counterDuration    = 2 * time.Second

	submittedMessage = "Message sent! We'll get back to you soon."
)

// Viewport is the drawable size, updated from Layout.
type Viewport struct {
	w, h float64
}

func NewViewport(w, h int) *Viewport {
	return &Viewport{w: float64(w), h: float64(h)}
}

func (v *Viewport) Size() (float64, float64) {
	return v.w, v.h
}

func (v *Viewport) set(w, h int) {
	v.w, v.h = float64(w), float64(h)
}

// Sounder plays burst feedback.
type Sounder interface {
	Burst(count int)
}

// Deps are the collaborators built by the composition root.
type Deps struct {
	Config   *config.Config
	Engine   *particle.Engine
	Frames   *frame.Scheduler
	Layer    *render.Layer
	Viewport *Viewport
	Effects  *effects.Director
	Sound    Sounder
	Notify   notify.Notifier
	Board    *notify.Board
}

// Game is the ebiten.Game driving the page.
type Game struct {
	cfg    *config.Config
	engine *particle.Engine
	frames *frame.Scheduler
	layer  *render.Layer
	view   *Viewport
	fx     *effects.Director
	sound  Sounder
	notify notify.Notifier
	board  *notify.Board

	page   *page
	scroll scroller
	reader inputReader

	menuOpen     bool
	statsStarted bool
	hovered      *element
	started      time.Time
	lastErr      error

	// openDialog is the config file picker; replaced in tests.
	openDialog func() (string, error)
}

// New wires a Game from deps. Start must be called before the first frame.
func New(d Deps) *Game {
	w, _ := d.Viewport.Size()
	g := &Game{
		cfg:        d.Config,
		engine:     d.Engine,
		frames:     d.Frames,
		layer:      d.Layer,
		view:       d.Viewport,
		fx:         d.Effects,
		sound:      d.Sound,
		notify:     d.Notify,
		board:      d.Board,
		page:       newPage(w),
		openDialog: selectConfigFile,
	}
	return g
}

// Start seeds ambient particles.
func (g *Game) Start(now time.Time) {
	g.started = now
	g.fx.Start(now)
}

func (g *Game) Update() error {
	return g.step(time.Now(), g.reader.poll())
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.view.set(outsideWidth, outsideHeight)
	g.page.layout(float64(outsideWidth))
	return outsideWidth, outsideHeight
}

// step runs one frame: the particle frame first, then timers, then input.
func (g *Game) step(now time.Time, in input) error {
	g.frames.Tick()
	g.fx.Tick(now)

	// Letter shortcuts are text while a form field has focus.
	if f := g.page.focusedField(); f != nil {
		if in.escape {
			f.focused = false
		}
		in.quit, in.clear, in.open = false, false, false
	} else if in.escape && g.menuOpen {
		g.menuOpen = false
	}
	if in.quit {
		return ebiten.Termination
	}
	if in.clear {
		g.engine.Clear()
	}
	if in.open {
		g.lastErr = g.openConfig()
	}

	_, h := g.view.Size()
	limit := g.page.height - h
	if limit < 0 {
		limit = 0
	}
	if in.wheel != 0 {
		g.scroll.wheel(in.wheel, limit)
	}
	g.scroll.step(now, limit)

	g.typeInto(in)

	if in.moved {
		g.fx.MouseTrail(in.x, in.y)
	}
	g.updateHover(in.x, in.y)
	if in.clicked {
		g.click(in.x, in.y, now)
	}

	g.updateReveal(now)
	g.stepCounters()
	return nil
}

// click dispatches a left click at screen coordinates.
func (g *Game) click(x, y float64, now time.Time) {
	if y < navHeight {
		if toggleRect(g.view).Contains(x, y) {
			g.menuOpen = !g.menuOpen
			g.fx.MenuToggle(toggleRect(g.view))
			g.sound.Burst(8)
		}
		return
	}

	if g.menuOpen {
		for i := sectionID(0); i < sectionCount; i++ {
			r := menuLinkRect(g.view, i)
			if r.Contains(x, y) {
				g.menuOpen = false
				g.fx.AnchorClick(r)
				g.sound.Burst(10)
				g.scroll.scrollTo(g.page.section(i).top, now)
				return
			}
		}
	}

	sy := g.scroll.y
	var hit *field
	for _, f := range g.page.fields {
		if toScreen(f.rect, sy).Contains(x, y) {
			hit = f
			break
		}
	}
	for _, f := range g.page.fields {
		if f == hit {
			continue
		}
		f.focused = false
	}
	if hit != nil {
		if !hit.focused {
			hit.focused = true
			g.fx.InputFocus(toScreen(hit.rect, sy))
		}
		return
	}

	if r := toScreen(g.page.cta.rect, sy); r.Contains(x, y) {
		g.fx.ButtonClick(r)
		g.fx.AnchorClick(r)
		g.sound.Burst(15)
		g.scroll.scrollTo(g.page.section(g.page.cta.anchor).top, now)
		return
	}
	if r := toScreen(g.page.submit.rect, sy); r.Contains(x, y) {
		g.submitForm(r)
		return
	}

	for _, b := range g.page.boxes {
		if r := toScreen(b.rect, sy); r.Contains(x, y) {
			b.pulseAt = now
			g.fx.BoxClick(r, b.color)
			g.sound.Burst(20)
			break
		}
	}
	g.fx.BackgroundClick(x, y)
}

func (g *Game) submitForm(r effects.Rect) {
	g.fx.ButtonClick(r)
	g.fx.FormSubmit(r)
	g.sound.Burst(25)
	g.notify.Notify(submittedMessage, notify.Success)
	g.page.resetForm()
}

// updateHover fires enter effects when the pointer moves onto a new element.
func (g *Game) updateHover(x, y float64) {
	var over *element
	if y >= navHeight {
		for _, e := range g.page.hoverables() {
			if toScreen(e.rect, g.scroll.y).Contains(x, y) {
				over = e
				break
			}
		}
	}
	if over == g.hovered {
		return
	}
	if g.hovered != nil {
		g.hovered.hovered = false
	}
	g.hovered = over
	if over == nil {
		return
	}
	over.hovered = true

	r := toScreen(over.rect, g.scroll.y)
	switch over.kind {
	case kindBox:
		g.fx.BoxHover(r)
	case kindService:
		g.fx.ServiceHover(r)
	case kindPortfolio:
		if over.revealed() {
			g.fx.PortfolioHover(r)
		}
	}
}

// updateReveal fades in elements entering the viewport and starts the
// counters once the stats strip is half visible.
func (g *Game) updateReveal(now time.Time) {
	w, h := g.view.Size()
	for _, e := range g.page.revealables() {
		if e.revealed() {
			continue
		}
		r := toScreen(e.rect, g.scroll.y)
		if visibleRatio(r, w, 0, h-revealBottomMargin) >= revealThreshold {
			e.revealedAt = now
			g.fx.Reveal(r)
		}
	}

	if !g.statsStarted {
		r := toScreen(g.page.statsBox.rect, g.scroll.y)
		if visibleRatio(r, w, 0, h) >= statsThreshold {
			g.statsStarted = true
			for i, s := range g.page.stats {
				s.counter = effects.NewCounter(s.target, counterDuration, g.page.statRect(i))
			}
		}
	}
}

func (g *Game) stepCounters() {
	for _, s := range g.page.stats {
		if s.counter == nil {
			continue
		}
		if s.counter.Step() {
			g.fx.CounterSparkle(toScreen(s.counter.Rect, g.scroll.y))
		}
	}
}

func (g *Game) typeInto(in input) {
	f := g.page.focusedField()
	if f == nil {
		return
	}
	if in.backspace && len(f.value) > 0 {
		r := []rune(f.value)
		f.value = string(r[:len(r)-1])
	}
	if len(in.chars) > 0 {
		f.value += string(in.chars)
	}
}

// openConfig asks for a YAML file and applies its engine and ambient
// sections to the running engine.
func (g *Game) openConfig() error {
	path, err := g.openDialog()
	if err != nil {
		if errors.Is(err, errCanceled) {
			return nil
		}
		return err
	}
	return g.applyConfig(path)
}

func (g *Game) applyConfig(path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		g.notify.Notify("Could not load "+path, notify.Error)
		return err
	}
	g.cfg.Engine = cfg.Engine
	g.cfg.Ambient = cfg.Ambient
	g.engine.SetTuning(cfg.Tuning())
	g.fx.SetAmbient(AmbientFrom(cfg))
	log.Printf("config: applied %s", path)
	g.notify.Notify("Loaded "+path, notify.Info)
	return nil
}

// AmbientFrom converts the ambient config section.
func AmbientFrom(c *config.Config) effects.Ambient {
	return effects.Ambient{
		Count:    c.AmbientCount(),
		Cap:      c.Ambient.Cap,
		Interval: c.Ambient.Interval,
		Disabled: c.Ambient.Disabled,
	}
}

func toggleRect(v *Viewport) effects.Rect {
	w, _ := v.Size()
	return effects.Rect{X: w - 56, Y: 8, W: 40, H: 40}
}

func menuLinkRect(v *Viewport, i sectionID) effects.Rect {
	w, _ := v.Size()
	return effects.Rect{X: w - 220, Y: navHeight + float64(i)*40, W: 220, H: 40}
}
