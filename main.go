package main

import (
	"errors"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/sparkle/internal/audio"
	"github.com/iburimskiy/sparkle/internal/config"
	"github.com/iburimskiy/sparkle/internal/effects"
	"github.com/iburimskiy/sparkle/internal/frame"
	"github.com/iburimskiy/sparkle/internal/game"
	"github.com/iburimskiy/sparkle/internal/notify"
	"github.com/iburimskiy/sparkle/internal/particle"
	"github.com/iburimskiy/sparkle/internal/render"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	frames := frame.NewScheduler()
	layer := render.NewLayer()
	view := game.NewViewport(cfg.Window.Width, cfg.Window.Height)

	engine := particle.New(particle.Deps{
		Viewport:  view,
		Renderer:  layer,
		Scheduler: frames,
	}, particle.WithTuning(cfg.Tuning()))
	fx := effects.NewDirector(engine, nil, game.AmbientFrom(cfg))

	sound := audio.Silent()
	if cfg.AudioEnabled() {
		// NewPlayer logs and hands back a silent player when the speaker fails.
		sound, _ = audio.NewPlayer(cfg.Audio.SampleRate, cfg.Volume())
	}

	board := &notify.Board{}
	var notifier notify.Notifier = board
	if cfg.Notify.Desktop {
		notifier = notify.Fanout{board, notify.NewDesktop("Sparkle")}
	}

	g := game.New(game.Deps{
		Config:   cfg,
		Engine:   engine,
		Frames:   frames,
		Layer:    layer,
		Viewport: view,
		Effects:  fx,
		Sound:    sound,
		Notify:   notifier,
		Board:    board,
	})
	g.Start(time.Now())

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
