package notify

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ncruces/zenity"
)

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func TestBannerLifecycle(t *testing.T) {
	var b Board
	b.Show("Mensagem enviada", Success, t0)

	if a := b.Visible(t0)[0].Alpha(t0); a != 0 {
		t.Errorf("alpha at show = %v, want 0 before fade-in", a)
	}
	if a := b.Visible(t0.Add(time.Second))[0].Alpha(t0.Add(time.Second)); a != 1 {
		t.Errorf("alpha at 1s = %v, want 1", a)
	}
	mid := t0.Add(ShowFor + FadeFor/2)
	if a := b.Visible(mid)[0].Alpha(mid); a <= 0 || a >= 1 {
		t.Errorf("alpha mid-fade = %v", a)
	}
	if n := len(b.Visible(t0.Add(ShowFor + FadeFor))); n != 0 {
		t.Errorf("visible = %d after fade, want 0", n)
	}
}

func TestBoardKeepsOrder(t *testing.T) {
	var b Board
	b.Show("first", Info, t0)
	b.Show("second", Error, t0.Add(4*time.Second))

	v := b.Visible(t0.Add(6 * time.Second))
	if len(v) != 1 || v[0].Text != "second" {
		t.Fatalf("visible = %+v", v)
	}
}

func TestBoardNotifyUsesClock(t *testing.T) {
	old := clock
	clock = func() time.Time { return t0 }
	defer func() { clock = old }()

	var b Board
	b.Notify("hi", Warning)
	v := b.Visible(t0.Add(time.Second))
	if len(v) != 1 || v[0].Kind != Warning {
		t.Fatalf("visible = %+v", v)
	}
}

func TestKindString(t *testing.T) {
	want := map[Kind]string{Info: "info", Success: "success", Warning: "warning", Error: "error", Kind(42): "info"}
	for k, name := range want {
		if got := k.String(); got != name {
			t.Errorf("Kind(%d).String() = %q, want %q", int(k), got, name)
		}
	}
}

func TestKindColors(t *testing.T) {
	want := map[Kind]string{Success: "#10b981", Error: "#ef4444", Warning: "#f59e0b", Info: "#3b82f6"}
	for k, c := range want {
		if k.Color() != c {
			t.Errorf("%s color = %s, want %s", k, k.Color(), c)
		}
	}
}

func TestDesktopNotify(t *testing.T) {
	var (
		mu   sync.Mutex
		got  []string
		done = make(chan struct{}, 2)
	)
	d := &Desktop{Title: "sparkle", send: func(msg string, opts ...zenity.Option) error {
		mu.Lock()
		got = append(got, msg)
		mu.Unlock()
		done <- struct{}{}
		if msg == "fail" {
			return errors.New("no notification daemon")
		}
		return nil
	}}

	var b Board
	Fanout{d, &b}.Notify("ok", Success)
	d.Notify("fail", Error)

	for i := 0; i < 2; i++ {
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("desktop notification not sent")
		}
	}
	mu.Lock()
	defer mu.Unlock()
	if len(got) != 2 {
		t.Errorf("sent = %v", got)
	}
	if len(b.banners) != 1 {
		t.Errorf("fanout skipped the board")
	}
}
