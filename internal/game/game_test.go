package game

import (
	"errors"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/sparkle/internal/config"
	"github.com/iburimskiy/sparkle/internal/effects"
	"github.com/iburimskiy/sparkle/internal/frame"
	"github.com/iburimskiy/sparkle/internal/notify"
	"github.com/iburimskiy/sparkle/internal/particle"
	"github.com/iburimskiy/sparkle/internal/render"
)

var t0 = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

type fakeSound struct{ bursts []int }

func (s *fakeSound) Burst(n int) { s.bursts = append(s.bursts, n) }

type sent struct {
	msg  string
	kind notify.Kind
}

type fakeNotify struct{ sent []sent }

func (n *fakeNotify) Notify(msg string, kind notify.Kind) {
	n.sent = append(n.sent, sent{msg, kind})
}

func newTestGame(t *testing.T) (*Game, *fakeSound, *fakeNotify) {
	t.Helper()
	view := NewViewport(1024, 768)
	frames := frame.NewScheduler()
	layer := render.NewLayer()
	eng := particle.New(particle.Deps{Viewport: view, Renderer: layer, Scheduler: frames},
		particle.WithRand(rand.New(rand.NewPCG(3, 4))))
	fx := effects.NewDirector(eng, rand.New(rand.NewPCG(5, 6)), effects.Ambient{Disabled: true})
	snd := &fakeSound{}
	nt := &fakeNotify{}

	g := New(Deps{
		Config:   config.Default(),
		Engine:   eng,
		Frames:   frames,
		Layer:    layer,
		Viewport: view,
		Effects:  fx,
		Sound:    snd,
		Notify:   nt,
		Board:    &notify.Board{},
	})
	g.Start(t0)
	return g, snd, nt
}

func clickAt(x, y float64) input {
	return input{x: x, y: y, clicked: true}
}

func centerOf(r effects.Rect) (float64, float64) {
	return r.Center()
}

func TestMenuToggleEmitsAndOpens(t *testing.T) {
	g, snd, _ := newTestGame(t)

	x, y := centerOf(toggleRect(g.view))
	if err := g.step(t0, clickAt(x, y)); err != nil {
		t.Fatal(err)
	}
	if !g.menuOpen {
		t.Fatal("menu not opened")
	}
	if g.engine.Len() != 8 {
		t.Errorf("particles = %d, want 8", g.engine.Len())
	}
	if len(snd.bursts) != 1 || snd.bursts[0] != 8 {
		t.Errorf("bursts = %v", snd.bursts)
	}
	if g.layer.Len() != g.engine.Len() {
		t.Errorf("layer holds %d sprites for %d particles", g.layer.Len(), g.engine.Len())
	}

	g.step(t0, input{escape: true})
	if g.menuOpen {
		t.Error("escape did not close the menu")
	}
}

func TestMenuLinkSmoothScrolls(t *testing.T) {
	g, _, _ := newTestGame(t)

	x, y := centerOf(toggleRect(g.view))
	g.step(t0, clickAt(x, y))
	before := g.engine.Len()

	lx, ly := centerOf(menuLinkRect(g.view, secPortfolio))
	g.step(t0, clickAt(lx, ly))
	if g.menuOpen {
		t.Error("menu still open after link click")
	}
	if g.engine.Len() != before+10 {
		t.Errorf("particles = %d, want %d", g.engine.Len(), before+10)
	}

	g.step(t0.Add(300*time.Millisecond), input{})
	mid := g.scroll.y
	g.step(t0.Add(700*time.Millisecond), input{})

	want := g.page.section(secPortfolio).top
	if mid <= 0 || mid >= want {
		t.Errorf("mid-scroll y = %v, want between 0 and %v", mid, want)
	}
	if g.scroll.y != want {
		t.Errorf("scroll y = %v, want %v", g.scroll.y, want)
	}
}

func TestBackgroundAndBoxClicks(t *testing.T) {
	g, _, _ := newTestGame(t)

	g.step(t0, clickAt(500, 500))
	if g.engine.Len() != 3 {
		t.Fatalf("background click spawned %d, want 3", g.engine.Len())
	}

	b := g.page.boxes[1]
	x, y := centerOf(toScreen(b.rect, g.scroll.y))
	g.step(t0, clickAt(x, y))
	if g.engine.Len() != 3+20+3 {
		t.Errorf("particles = %d after box click, want 26", g.engine.Len())
	}
	if b.pulseAt != t0 {
		t.Error("box did not pulse")
	}
}

func TestHoverFiresOnEnterOnly(t *testing.T) {
	g, _, _ := newTestGame(t)

	b := g.page.boxes[0]
	x, y := centerOf(toScreen(b.rect, g.scroll.y))
	g.step(t0, input{x: x, y: y, moved: true})
	if !b.hovered || g.fx.Pending() != 3 {
		t.Fatalf("hovered=%v pending=%d", b.hovered, g.fx.Pending())
	}
	g.step(t0.Add(200*time.Millisecond), input{x: x + 1, y: y, moved: true})
	if g.fx.Pending() != 0 {
		t.Errorf("staying on the box queued more bursts: %d", g.fx.Pending())
	}

	g.step(t0.Add(300*time.Millisecond), input{x: 5, y: 700})
	if b.hovered {
		t.Error("hover not cleared on leave")
	}
}

func TestSubmitForm(t *testing.T) {
	g, snd, nt := newTestGame(t)
	g.scroll.y = g.page.height - 768

	f := g.page.fields[0]
	fx, fy := centerOf(toScreen(f.rect, g.scroll.y))
	g.step(t0, clickAt(fx, fy))
	if !f.focused {
		t.Fatal("field not focused")
	}

	g.step(t0, input{chars: []rune("qc"), quit: true, clear: true})
	if f.value != "qc" {
		t.Fatalf("value = %q, want %q", f.value, "qc")
	}
	g.step(t0, input{backspace: true})
	if f.value != "q" {
		t.Fatalf("value = %q after backspace", f.value)
	}

	// Let the focus sparkles land before counting.
	g.step(t0.Add(500*time.Millisecond), input{})
	before := g.engine.Len()
	sx, sy := centerOf(toScreen(g.page.submit.rect, g.scroll.y))
	g.step(t0.Add(time.Second), clickAt(sx, sy))

	if got := g.engine.Len() - before; got != 15+25 {
		t.Errorf("submit spawned %d particles, want 40", got)
	}
	if len(nt.sent) != 1 || nt.sent[0].kind != notify.Success {
		t.Errorf("notifications = %+v", nt.sent)
	}
	if f.value != "" || f.focused {
		t.Error("form not reset")
	}
	if snd.bursts[len(snd.bursts)-1] != 25 {
		t.Errorf("bursts = %v", snd.bursts)
	}
}

func TestRevealOnScroll(t *testing.T) {
	g, _, _ := newTestGame(t)

	g.step(t0, input{})
	for _, c := range g.page.categories {
		if c.revealed() {
			t.Fatal("category revealed before scrolling")
		}
	}

	g.scroll.y = g.page.section(secServices).top
	g.step(t0.Add(time.Second), input{})
	for _, c := range g.page.categories {
		if !c.revealed() {
			t.Fatal("category not revealed in view")
		}
	}
	if g.engine.Len() != 5*len(g.page.categories) {
		t.Errorf("reveal particles = %d, want %d", g.engine.Len(), 5*len(g.page.categories))
	}
	if p := g.page.categories[0].revealProgress(t0.Add(time.Second + revealTime)); p != 1 {
		t.Errorf("reveal progress = %v, want 1", p)
	}

	n := g.engine.Len()
	g.step(t0.Add(2*time.Second), input{})
	if g.engine.Len() > n {
		t.Error("revealed twice")
	}
}

func TestCountersStartOnce(t *testing.T) {
	g, _, _ := newTestGame(t)

	g.scroll.y = g.page.statsBox.rect.Y - 300
	g.step(t0, input{})
	if !g.statsStarted {
		t.Fatal("counters not started")
	}
	first := g.page.stats[0].counter

	now := t0
	for i := 0; i < 200; i++ {
		now = now.Add(16 * time.Millisecond)
		g.step(now, input{})
	}
	for _, s := range g.page.stats {
		if !s.counter.Done() {
			t.Fatalf("%s counter not finished", s.label)
		}
	}
	if got := g.page.stats[0].counter.Text(); got != "120+" {
		t.Errorf("text = %q, want 120+", got)
	}
	if g.page.stats[0].counter != first {
		t.Error("counters restarted")
	}
}

func TestKeys(t *testing.T) {
	g, _, _ := newTestGame(t)

	g.step(t0, clickAt(500, 500))
	g.step(t0, input{clear: true})
	if g.engine.Len() != 0 || g.engine.Running() {
		t.Errorf("clear left %d particles, running=%v", g.engine.Len(), g.engine.Running())
	}
	if g.frames.Pending() != 0 {
		t.Errorf("clear left %d frames queued", g.frames.Pending())
	}

	if err := g.step(t0, input{quit: true}); !errors.Is(err, ebiten.Termination) {
		t.Errorf("quit err = %v, want Termination", err)
	}
}

func TestApplyConfig(t *testing.T) {
	g, _, nt := newTestGame(t)

	path := filepath.Join(t.TempDir(), "fx.yaml")
	if err := os.WriteFile(path, []byte("engine:\n  burst: 9\nambient:\n  count: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	g.openDialog = func() (string, error) { return path, nil }

	g.step(t0, input{open: true})
	if g.lastErr != nil {
		t.Fatalf("open: %v", g.lastErr)
	}
	if g.engine.Tuning().Burst != 9 {
		t.Errorf("burst = %d, want 9", g.engine.Tuning().Burst)
	}
	if g.cfg.AmbientCount() != 3 {
		t.Errorf("ambient count = %d, want 3", g.cfg.AmbientCount())
	}
	if len(nt.sent) != 1 || nt.sent[0].kind != notify.Info {
		t.Errorf("notifications = %+v", nt.sent)
	}

	g.openDialog = func() (string, error) { return "", errCanceled }
	g.lastErr = nil
	g.step(t0, input{open: true})
	if g.lastErr != nil {
		t.Errorf("cancel reported as error: %v", g.lastErr)
	}

	g.openDialog = func() (string, error) { return filepath.Join(t.TempDir(), "missing.yaml"), nil }
	g.step(t0, input{open: true})
	if g.lastErr == nil {
		t.Error("missing file not reported")
	}
	if last := nt.sent[len(nt.sent)-1]; last.kind != notify.Error {
		t.Errorf("last notification = %+v, want error", last)
	}
}

func TestLayoutTracksWindow(t *testing.T) {
	g, _, _ := newTestGame(t)

	w, h := g.Layout(800, 600)
	if w != 800 || h != 600 {
		t.Fatalf("layout = %dx%d", w, h)
	}
	vw, vh := g.view.Size()
	if vw != 800 || vh != 600 {
		t.Errorf("viewport = %vx%v", vw, vh)
	}
	if g.page.width != 800 {
		t.Errorf("page width = %v", g.page.width)
	}
	last := g.page.portfolio[len(g.page.portfolio)-1].rect
	if last.X+last.W > 800 {
		t.Errorf("portfolio overflows: %+v", last)
	}
}

func TestFocusSparklesOnlyWhenGainingFocus(t *testing.T) {
	g, _, _ := newTestGame(t)
	g.scroll.y = g.page.height - 768

	f := g.page.fields[1]
	x, y := centerOf(toScreen(f.rect, g.scroll.y))
	g.step(t0, clickAt(x, y))
	if !f.focused || g.fx.Pending() != 3 {
		t.Fatalf("focused=%v pending=%d after first click", f.focused, g.fx.Pending())
	}

	g.step(t0.Add(time.Second), input{})
	g.step(t0.Add(time.Second), clickAt(x+5, y))
	if !f.focused {
		t.Fatal("second click dropped focus")
	}
	if g.fx.Pending() != 0 {
		t.Errorf("refocusing queued %d more bursts", g.fx.Pending())
	}

	other := g.page.fields[0]
	ox, oy := centerOf(toScreen(other.rect, g.scroll.y))
	g.step(t0.Add(2*time.Second), clickAt(ox, oy))
	if f.focused || !other.focused {
		t.Error("focus did not move to the clicked field")
	}
}

func TestReloadClearsStaleError(t *testing.T) {
	g, _, _ := newTestGame(t)

	dir := t.TempDir()
	g.openDialog = func() (string, error) { return filepath.Join(dir, "missing.yaml"), nil }
	g.step(t0, input{open: true})
	if g.lastErr == nil {
		t.Fatal("failed reload not reported")
	}

	good := filepath.Join(dir, "good.yaml")
	if err := os.WriteFile(good, []byte("engine:\n  burst: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	g.openDialog = func() (string, error) { return good, nil }
	g.step(t0, input{open: true})
	if g.lastErr != nil {
		t.Errorf("error still shown after a successful reload: %v", g.lastErr)
	}
}
