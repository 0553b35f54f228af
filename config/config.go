// Package config loads the summit site's settings from a TOML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/viper"

	"github.com/phanxgames/curtain"
)

// Config holds application configuration.
type Config struct {
	Window     WindowConfig
	Transition TransitionConfig
	Reveal     RevealConfig
	Magnetic   MagneticConfig
	Float      FloatConfig
	Labels     map[string]string
	Catalog    CatalogConfig
	Log        LogConfig
}

// WindowConfig sizes the window and tunes wheel scrolling.
type WindowConfig struct {
	Title        string
	Width        int
	Height       int
	ScrollSpeed  float64 `mapstructure:"scroll_speed"`
	SmoothScroll float64 `mapstructure:"smooth_scroll"`
	ShowFPS      bool    `mapstructure:"show_fps"`
	Background   string
}

// TransitionConfig holds the overlay wipe timing.
type TransitionConfig struct {
	Layers           int
	LayerColors      []string `mapstructure:"layer_colors"`
	LabelColor       string   `mapstructure:"label_color"`
	LayerStagger     float64  `mapstructure:"layer_stagger"`
	CoverDuration    float64  `mapstructure:"cover_duration"`
	RevealDuration   float64  `mapstructure:"reveal_duration"`
	LabelInDuration  float64  `mapstructure:"label_in_duration"`
	LabelOverlap     float64  `mapstructure:"label_overlap"`
	LabelOutDuration float64  `mapstructure:"label_out_duration"`
	LabelRise        float64  `mapstructure:"label_rise"`
	Ease             string
}

// RevealConfig holds the scroll-reveal defaults.
type RevealConfig struct {
	Threshold float64
	Offset    float64
	Duration  float64
	Stagger   float64
	Ease      string
}

// MagneticConfig holds the magnetic button feel.
type MagneticConfig struct {
	Strength       float64
	Duration       float64
	Ease           string
	ReturnDuration float64 `mapstructure:"return_duration"`
	ReturnEase     string  `mapstructure:"return_ease"`
}

// FloatConfig holds the idle bob.
type FloatConfig struct {
	Amplitude float64
	Duration  float64
	Ease      string
}

// CatalogConfig points at an events file. An empty path uses the embedded
// events.
type CatalogConfig struct {
	Path  string
	Watch bool
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string
	Format string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.title", "E-Summit 2026")
	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 720)
	v.SetDefault("window.scroll_speed", 40)
	v.SetDefault("window.smooth_scroll", 0.25)
	v.SetDefault("window.show_fps", false)
	v.SetDefault("window.background", "#0a0f1c")

	v.SetDefault("transition.layers", 1)
	v.SetDefault("transition.layer_colors", []string{"#1b263b"})
	v.SetDefault("transition.label_color", "#f4a261")
	v.SetDefault("transition.layer_stagger", 0.0)
	v.SetDefault("transition.cover_duration", 0.7)
	v.SetDefault("transition.reveal_duration", 0.7)
	v.SetDefault("transition.label_in_duration", 0.4)
	v.SetDefault("transition.label_overlap", 0.45)
	v.SetDefault("transition.label_out_duration", 0.3)
	v.SetDefault("transition.label_rise", 20)
	v.SetDefault("transition.ease", "power4.inOut")

	v.SetDefault("reveal.threshold", curtain.DefaultThreshold)
	v.SetDefault("reveal.offset", 50)
	v.SetDefault("reveal.duration", 1.0)
	v.SetDefault("reveal.stagger", 0.1)
	v.SetDefault("reveal.ease", "power3.out")

	v.SetDefault("magnetic.strength", 0.3)
	v.SetDefault("magnetic.duration", 0.3)
	v.SetDefault("magnetic.ease", "power2.out")
	v.SetDefault("magnetic.return_duration", 0.5)
	v.SetDefault("magnetic.return_ease", "elastic.out")

	v.SetDefault("float.amplitude", 8)
	v.SetDefault("float.duration", 3.0)
	v.SetDefault("float.ease", "sine.inOut")

	v.SetDefault("catalog.path", "")
	v.SetDefault("catalog.watch", false)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// Load reads configuration from path (or $CURTAIN_CONFIG when path is
// empty) and the environment. Env overrides use prefix CURTAIN_, so
// window.width is CURTAIN_WINDOW_WIDTH. A missing file is not an error when
// no path was given.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("CURTAIN_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("curtain")
	}

	v.SetEnvPrefix("CURTAIN")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks sizes, ease names and colors.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Reveal.Threshold <= 0 || c.Reveal.Threshold > 1 {
		return fmt.Errorf("config: reveal.threshold %v must be in (0, 1]", c.Reveal.Threshold)
	}
	for key, name := range map[string]string{
		"transition.ease":      c.Transition.Ease,
		"reveal.ease":          c.Reveal.Ease,
		"magnetic.ease":        c.Magnetic.Ease,
		"magnetic.return_ease": c.Magnetic.ReturnEase,
		"float.ease":           c.Float.Ease,
	} {
		if _, err := curtain.EaseByName(name); err != nil {
			return fmt.Errorf("config: %s: %w", key, err)
		}
	}
	colors := append([]string{c.Window.Background, c.Transition.LabelColor}, c.Transition.LayerColors...)
	for _, s := range colors {
		if _, err := ParseColor(s); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("config: log.format %q must be text or json", c.Log.Format)
	}
	return nil
}

// ParseColor parses "#rgb", "#rrggbb" or "#rrggbbaa". The leading # is
// optional.
func ParseColor(s string) (curtain.Color, error) {
	hex := "#" + strings.TrimPrefix(s, "#")
	alpha := 1.0
	if len(hex) == 9 {
		a, err := strconv.ParseUint(hex[7:], 16, 8)
		if err != nil {
			return curtain.Color{}, fmt.Errorf("invalid color %q", s)
		}
		alpha = float64(a) / 255
		hex = hex[:7]
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return curtain.Color{}, fmt.Errorf("invalid color %q", s)
	}
	return curtain.Color{R: c.R, G: c.G, B: c.B, A: alpha}, nil
}

// mustColor is used after Validate has accepted every color.
func mustColor(s string) curtain.Color {
	c, err := ParseColor(s)
	if err != nil {
		panic("config: " + err.Error())
	}
	return c
}

// SlogLevel maps the level name to a slog.Level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return lvl, nil
}

// ShellConfig converts the window and transition sections. Call it only on
// a validated Config.
func (c Config) ShellConfig() curtain.ShellConfig {
	t := c.Transition
	layerColors := make([]curtain.Color, len(t.LayerColors))
	for i, s := range t.LayerColors {
		layerColors[i] = mustColor(s)
	}
	return curtain.ShellConfig{
		Width:       float64(c.Window.Width),
		Height:      float64(c.Window.Height),
		Layers:      t.Layers,
		LayerColors: layerColors,
		LabelColor:  mustColor(t.LabelColor),
		Labels:      c.Labels,
		Background:  mustColor(c.Window.Background),
		Transition: curtain.TransitionConfig{
			CoverDuration:    float32(t.CoverDuration),
			RevealDuration:   float32(t.RevealDuration),
			LayerStagger:     float32(t.LayerStagger),
			LabelInDuration:  float32(t.LabelInDuration),
			LabelOverlap:     float32(t.LabelOverlap),
			LabelOutDuration: float32(t.LabelOutDuration),
			LabelRise:        t.LabelRise,
			Ease:             curtain.MustEase(t.Ease),
		},
	}
}

// RunConfig converts the window section.
func (c Config) RunConfig() curtain.RunConfig {
	w := c.Window
	return curtain.RunConfig{
		Title:        w.Title,
		Width:        w.Width,
		Height:       w.Height,
		ScrollSpeed:  w.ScrollSpeed,
		SmoothScroll: float32(w.SmoothScroll),
		ShowFPS:      w.ShowFPS,
	}
}

// RevealOptions returns the reveal defaults as curtain options.
func (c Config) RevealOptions() curtain.RevealOptions {
	r := c.Reveal
	return curtain.RevealOptions{
		EntranceOffset: r.Offset,
		Stagger:        float32(r.Stagger),
		Threshold:      r.Threshold,
		Duration:       float32(r.Duration),
		Ease:           curtain.MustEase(r.Ease),
	}
}

// MagneticController builds a magnetic controller on anim.
func (c Config) MagneticController(anim *curtain.Animator) curtain.Magnetic {
	m := curtain.NewMagnetic(anim)
	m.Strength = c.Magnetic.Strength
	m.Duration = float32(c.Magnetic.Duration)
	m.Ease = curtain.MustEase(c.Magnetic.Ease)
	m.ReturnDuration = float32(c.Magnetic.ReturnDuration)
	m.ReturnEase = curtain.MustEase(c.Magnetic.ReturnEase)
	return m
}

// FloatController builds a float controller on anim.
func (c Config) FloatController(anim *curtain.Animator) curtain.Float {
	return curtain.Float{
		Anim:      anim,
		Amplitude: c.Float.Amplitude,
		Duration:  float32(c.Float.Duration),
		Ease:      curtain.MustEase(c.Float.Ease),
	}
}
