package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/iburimskiy/sparkle/internal/particle"
)

const (
	// EnvConfigPath names the YAML file to load.
	EnvConfigPath = "SPARKLE_CONFIG"

	// EnvMute disables audio when set to a non-empty value other than "0".
	EnvMute = "SPARKLE_MUTE"

	DefaultConfigPath = "sparkle.yaml"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Engine  EngineConfig  `yaml:"engine"`
	Ambient AmbientConfig `yaml:"ambient"`
	Audio   AudioConfig   `yaml:"audio"`
	Notify  NotifyConfig  `yaml:"notify"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// EngineConfig mirrors particle.Tuning. Missing keys fall back to defaults;
// pointer fields accept an explicit zero.
type EngineConfig struct {
	Drag    *float64 `yaml:"drag"`
	Decay   *float64 `yaml:"decay"`
	Bounce  *float64 `yaml:"bounce"`
	Gravity *float64 `yaml:"gravity"`
	Speed   float64  `yaml:"speed"`
	SizeMin float64  `yaml:"sizeMin"`
	SizeMax float64  `yaml:"sizeMax"`
	Palette []string `yaml:"palette"`
	Burst   int      `yaml:"burst"`
}

// AmbientConfig controls background repopulation.
type AmbientConfig struct {
	Count    *int          `yaml:"count"`
	Cap      int           `yaml:"cap"`
	Interval time.Duration `yaml:"interval"`
	Disabled bool          `yaml:"disabled"`
}

type AudioConfig struct {
	Enabled    *bool    `yaml:"enabled"`
	SampleRate int      `yaml:"sampleRate"`
	Volume     *float64 `yaml:"volume"`
}

type NotifyConfig struct {
	Desktop bool `yaml:"desktop"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	c := &Config{}
	applyDefaults(c)
	return c
}

// Tuning converts the engine section into particle constants.
func (c *Config) Tuning() particle.Tuning {
	e := c.Engine
	t := particle.DefaultTuning()
	t.Drag = deref(e.Drag, t.Drag)
	t.Decay = deref(e.Decay, t.Decay)
	t.Bounce = deref(e.Bounce, t.Bounce)
	t.Gravity = deref(e.Gravity, t.Gravity)
	t.Speed = e.Speed
	t.SizeMin = e.SizeMin
	t.SizeMax = e.SizeMax
	t.Palette = append([]string(nil), e.Palette...)
	t.Burst = e.Burst
	return t
}

// AmbientCount is the number of particles per ambient fill.
func (c *Config) AmbientCount() int {
	return deref(c.Ambient.Count, 0)
}

// Volume is the audio volume in [0, 1]; zero is silent.
func (c *Config) Volume() float64 {
	return deref(c.Audio.Volume, 0)
}

// AudioEnabled reports whether burst sounds should play.
func (c *Config) AudioEnabled() bool {
	return c.Audio.Enabled == nil || *c.Audio.Enabled
}

// Load reads a YAML config file, applies defaults and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes YAML config data. name is used in error messages only.
func Parse(data []byte, name string) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML from %s: %w", name, err)
	}

	applyDefaults(&c)

	if err := validate(&c); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return &c, nil
}

// FromEnv loads .env (if present), then the YAML file named by
// SPARKLE_CONFIG or sparkle.yaml. A missing file is not an error.
func FromEnv() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	path := os.Getenv(EnvConfigPath)
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath
	}

	c, err := Load(path)
	switch {
	case err == nil:
		log.Printf("config: loaded %s", path)
	case !explicit && errors.Is(err, os.ErrNotExist):
		log.Printf("config: %s not found, using defaults", path)
		c = Default()
	default:
		return nil, err
	}

	if m := os.Getenv(EnvMute); m != "" && m != "0" {
		off := false
		c.Audio.Enabled = &off
	}
	return c, nil
}

func applyDefaults(c *Config) {
	w := &c.Window
	if w.Width == 0 {
		w.Width = 1024
	}
	if w.Height == 0 {
		w.Height = 768
	}
	if w.Title == "" {
		w.Title = "Sparkle - click anywhere, Esc: close menu, C: clear, O: open config, Q: quit"
	}

	d := particle.DefaultTuning()
	e := &c.Engine
	setDefault(&e.Drag, d.Drag)
	setDefault(&e.Decay, d.Decay)
	setDefault(&e.Bounce, d.Bounce)
	setDefault(&e.Gravity, d.Gravity)
	if e.Speed == 0 {
		e.Speed = d.Speed
	}
	if e.SizeMin == 0 {
		e.SizeMin = d.SizeMin
	}
	if e.SizeMax == 0 {
		e.SizeMax = d.SizeMax
	}
	if len(e.Palette) == 0 {
		e.Palette = d.Palette
	}
	if e.Burst == 0 {
		e.Burst = d.Burst
	}

	a := &c.Ambient
	setDefault(&a.Count, 30)
	if a.Cap == 0 {
		a.Cap = 50
	}
	if a.Interval == 0 {
		a.Interval = 2 * time.Second
	}

	if c.Audio.SampleRate == 0 {
		c.Audio.SampleRate = 44100
	}
	setDefault(&c.Audio.Volume, 0.25)
}

func validate(c *Config) error {
	if c.Window.Width < 0 || c.Window.Height < 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	e := c.Engine
	if v := deref(e.Drag, 0); v < 0 || v > 1 {
		return fmt.Errorf("%w: engine.drag %v outside [0, 1]", ErrInvalid, v)
	}
	if v := deref(e.Decay, 0); v < 0 {
		return fmt.Errorf("%w: engine.decay %v is negative", ErrInvalid, v)
	}
	if v := deref(e.Bounce, 0); v < 0 || v > 1 {
		return fmt.Errorf("%w: engine.bounce %v outside [0, 1]", ErrInvalid, v)
	}
	if e.SizeMin <= 0 || e.SizeMax < e.SizeMin {
		return fmt.Errorf("%w: engine size range [%v, %v]", ErrInvalid, e.SizeMin, e.SizeMax)
	}
	if e.Burst < 0 {
		return fmt.Errorf("%w: engine.burst %d is negative", ErrInvalid, e.Burst)
	}
	if c.AmbientCount() < 0 || c.Ambient.Cap < 0 || c.Ambient.Interval < 0 {
		return fmt.Errorf("%w: ambient settings must not be negative", ErrInvalid)
	}
	if v := c.Volume(); c.Audio.SampleRate < 0 || v < 0 || v > 1 {
		return fmt.Errorf("%w: audio sampleRate %d volume %v", ErrInvalid, c.Audio.SampleRate, v)
	}
	return nil
}

func setDefault[T any](p **T, v T) {
	if *p == nil {
		*p = &v
	}
}

func deref[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
