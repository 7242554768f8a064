package game

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/sparkle/internal/effects"
	"github.com/iburimskiy/sparkle/internal/render"
)

var (
	primary   = render.ParseColor("#6366f1")
	textDark  = render.ParseColor("#1f2937")
	panel     = color.NRGBA{R: 255, G: 255, B: 255, A: 28}
	panelEdge = color.NRGBA{R: 255, G: 255, B: 255, A: 60}
	navColor  = color.NRGBA{R: 15, G: 18, B: 32, A: 235}
)

func (g *Game) Draw(screen *ebiten.Image) {
	now := time.Now()
	w, h := g.view.Size()

	g.drawBackground(screen, now, w, h)
	g.drawSections(screen, w, h)
	g.drawHero(screen, now)
	g.drawServices(screen, now)
	g.drawPortfolio(screen, now)
	g.drawStats(screen)
	g.drawForm(screen)

	g.layer.Draw(screen)

	g.drawNavbar(screen, w)
	g.drawBanners(screen, now, w)
	g.drawHUD(screen, now, h)
}

func (g *Game) drawBackground(screen *ebiten.Image, now time.Time, w, h float64) {
	t := now.Sub(g.started).Seconds()
	const bands = 48
	bh := h / bands
	for i := 0; i < bands; i++ {
		ratio := float64(i) / bands
		c := color.NRGBA{
			R: uint8(14 + 12*math.Sin(t*0.5+ratio*math.Pi)),
			G: uint8(16 + 10*math.Cos(t*0.3+ratio*math.Pi)),
			B: uint8(34 + 18*math.Sin(t*0.7+ratio*math.Pi)),
			A: 255,
		}
		vector.DrawFilledRect(screen, 0, float32(float64(i)*bh), float32(w), float32(bh+1), c, false)
	}
}

func (g *Game) drawSections(screen *ebiten.Image, w, h float64) {
	for _, s := range g.page.sections {
		top := s.top - g.scroll.y
		if top > h || top+s.height < 0 {
			continue
		}
		if s.id%2 == 1 {
			vector.DrawFilledRect(screen, 0, float32(top), float32(w), float32(s.height), color.NRGBA{R: 255, G: 255, B: 255, A: 8}, false)
		}
		ebitenutil.DebugPrintAt(screen, s.title, int(margin), int(top+navHeight+12))
	}
}

func (g *Game) drawHero(screen *ebiten.Image, now time.Time) {
	home := g.page.section(secHome)
	top := home.top - g.scroll.y
	ebitenutil.DebugPrintAt(screen, "We build things that sparkle.", int(margin), int(top+120))
	ebitenutil.DebugPrintAt(screen, "Click anything. Hover the boxes. Scroll down.", int(margin), int(top+140))

	drawButton(screen, toScreen(g.page.cta.rect, g.scroll.y), g.page.cta.label, g.page.cta.hovered)

	t := now.Sub(g.started).Seconds()
	for i, b := range g.page.boxes {
		r := toScreen(b.rect, g.scroll.y)
		r.Y += 6 * math.Sin(t*1.5+float64(i))

		scale := 1.0
		if !b.pulseAt.IsZero() {
			if p := float64(now.Sub(b.pulseAt)) / float64(pulseTime); p < 1 {
				scale = 1 + 0.15*math.Sin(p*math.Pi)
			}
		}
		if b.hovered {
			scale += 0.05
		}
		cx, cy := r.Center()
		r.W *= scale
		r.H *= scale
		r.X, r.Y = cx-r.W/2, cy-r.H/2

		c := render.ParseColor(b.color)
		fillRect(screen, r, render.WithAlpha(c, 0.35))
		strokeRect(screen, r, 2, c)
	}
}

func (g *Game) drawServices(screen *ebiten.Image, now time.Time) {
	for ci, cat := range g.page.categories {
		p := cat.revealProgress(now)
		if p <= 0 {
			continue
		}
		lift := (1 - p) * revealLift
		r := toScreen(cat.rect, g.scroll.y)
		r.Y += lift
		fillRect(screen, r, render.WithAlpha(panel, p))
		strokeRect(screen, r, 1, render.WithAlpha(panelEdge, p))
		ebitenutil.DebugPrintAt(screen, cat.label, int(r.X+20), int(r.Y+24))

		per := len(g.page.services) / len(g.page.categories)
		for _, s := range g.page.services[ci*per : (ci+1)*per] {
			sr := toScreen(s.rect, g.scroll.y)
			sr.Y += lift
			tc := render.WithAlpha(panelEdge, p)
			dx := 0.0
			if s.hovered {
				tc = render.WithAlpha(primary, p)
				dx = 10
			}
			fillRect(screen, sr, render.WithAlpha(panel, p*0.6))
			vector.DrawFilledRect(screen, float32(sr.X+dx), float32(sr.Y+12), 4, 16, tc, false)
			ebitenutil.DebugPrintAt(screen, s.label, int(sr.X+dx+14), int(sr.Y+12))
		}
	}
}

func (g *Game) drawPortfolio(screen *ebiten.Image, now time.Time) {
	for i, it := range g.page.portfolio {
		p := it.revealProgress(now)
		if p <= 0 {
			continue
		}
		r := toScreen(it.rect, g.scroll.y)
		r.Y += (1 - p) * revealLift
		hue := float64(i) * 55
		c := render.HSV(hue+220, 0.55, 0.8)
		if it.hovered {
			c = render.HSV(hue+220, 0.7, 0.95)
		}
		fillRect(screen, r, render.WithAlpha(c, 0.45*p))
		strokeRect(screen, r, 1, render.WithAlpha(panelEdge, p))
		ebitenutil.DebugPrintAt(screen, it.label, int(r.X+14), int(r.Y+r.H-28))
	}
}

func (g *Game) drawStats(screen *ebiten.Image) {
	for i, s := range g.page.stats {
		r := toScreen(g.page.statRect(i), g.scroll.y)
		text := "0+"
		if s.counter != nil {
			text = s.counter.Text()
		}
		cx, _ := r.Center()
		ebitenutil.DebugPrintAt(screen, text, int(cx-float64(len(text))*3), int(r.Y+50))
		ebitenutil.DebugPrintAt(screen, s.label, int(cx-float64(len(s.label))*3), int(r.Y+80))
	}
}

func (g *Game) drawForm(screen *ebiten.Image) {
	for _, f := range g.page.fields {
		r := toScreen(f.rect, g.scroll.y)
		fillRect(screen, r, color.NRGBA{R: 255, G: 255, B: 255, A: 230})
		edge := panelEdge
		if f.focused {
			edge = primary
		}
		strokeRect(screen, r, 2, edge)
		ebitenutil.DebugPrintAt(screen, f.label, int(r.X), int(r.Y-16))

		text := f.value
		if f.focused {
			text += "_"
		}
		// DebugPrint draws white; a dark backdrop keeps the text readable.
		if text != "" {
			vector.DrawFilledRect(screen, float32(r.X+8), float32(r.Y+10), float32(len(text)*6+4), 18, textDark, false)
			ebitenutil.DebugPrintAt(screen, text, int(r.X+10), int(r.Y+12))
		}
	}
	drawButton(screen, toScreen(g.page.submit.rect, g.scroll.y), g.page.submit.label, false)
}

func (g *Game) drawNavbar(screen *ebiten.Image, w float64) {
	shadow := 4.0
	if g.scroll.y > shadowScrollY {
		shadow = 10
	}
	vector.DrawFilledRect(screen, 0, float32(navHeight), float32(w), float32(shadow), color.NRGBA{A: 60}, false)
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(navHeight), navColor, false)
	ebitenutil.DebugPrintAt(screen, "sparkle", int(margin), 20)

	tr := toggleRect(g.view)
	strokeRect(screen, tr, 1, panelEdge)
	for i := 0; i < 3; i++ {
		y := tr.Y + 12 + float64(i)*8
		lc := panelEdge
		if g.menuOpen {
			lc = primary
		}
		vector.StrokeLine(screen, float32(tr.X+10), float32(y), float32(tr.X+tr.W-10), float32(y), 2, lc, false)
	}

	if !g.menuOpen {
		return
	}
	for i := sectionID(0); i < sectionCount; i++ {
		r := menuLinkRect(g.view, i)
		fillRect(screen, r, navColor)
		strokeRect(screen, r, 1, panelEdge)
		ebitenutil.DebugPrintAt(screen, sectionTitles[i], int(r.X+16), int(r.Y+12))
	}
}

func (g *Game) drawBanners(screen *ebiten.Image, now time.Time, w float64) {
	y := navHeight + 20
	for _, b := range g.board.Visible(now) {
		a := b.Alpha(now)
		if a <= 0 {
			continue
		}
		bw := float64(len(b.Text)*6 + 32)
		slide := (1 - a) * 40
		r := effects.Rect{X: w - bw - 20 + slide, Y: y, W: bw, H: 36}
		fillRect(screen, r, render.WithAlpha(render.ParseColor(b.Kind.Color()), a))
		ebitenutil.DebugPrintAt(screen, b.Text, int(r.X+16), int(r.Y+10))
		y += 46
	}
}

func (g *Game) drawHUD(screen *ebiten.Image, now time.Time, h float64) {
	status := fmt.Sprintf("particles: %d  up %s  C: clear  O: open config  Q: quit",
		g.engine.Len(), formatDuration(now.Sub(g.started)))
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, int(h)-20)
}

func drawButton(screen *ebiten.Image, r effects.Rect, label string, hovered bool) {
	bg := primary
	if hovered {
		bg = render.HSV(245, 0.6, 1)
	}
	fillRect(screen, r, bg)
	strokeRect(screen, r, 2, panelEdge)
	textWidth := len(label) * 6
	ebitenutil.DebugPrintAt(screen, label, int(r.X+(r.W-float64(textWidth))/2), int(r.Y+(r.H-16)/2))
}

func fillRect(screen *ebiten.Image, r effects.Rect, c color.Color) {
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

func strokeRect(screen *ebiten.Image, r effects.Rect, width float32, c color.Color) {
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), width, c, false)
}
