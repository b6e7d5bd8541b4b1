package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ErrUnknownFrontend is returned by Validate for an unsupported frontend.
var ErrUnknownFrontend = errors.New("unknown frontend")

const (
	FrontendFyne     = "fyne"
	FrontendEbiten   = "ebiten"
	FrontendHeadless = "headless"
)

// Config holds application configuration.
type Config struct {
	Frontend string
	Sketch   string
	Canvas   CanvasConfig
	Frame    FrameConfig
	Net      NetConfig
	Export   ExportConfig
	Random   RandomConfig
}

// CanvasConfig sizes the drawing surface.
type CanvasConfig struct {
	Width  int
	Height int
	Title  string
}

// FrameConfig controls the render loop.
type FrameConfig struct {
	FPS   int
	Count int // frames rendered by the headless frontend
}

// NetConfig holds peer sharing settings.
type NetConfig struct {
	Port int
	MDNS bool
}

// ExportConfig names the files the headless frontend writes. Empty skips.
type ExportConfig struct {
	PNG string
	PDF string
}

type RandomConfig struct {
	Seed int64
}

// Load reads configuration from file and env. Env var overrides use prefix TURTLEBOARD_.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	cfgPath := os.Getenv("TURTLEBOARD_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "turtleboard"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("TURTLEBOARD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Random.Seed == 0 {
		c.Random.Seed = time.Now().UnixNano()
	}
	return c, c.Validate()
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("frontend", FrontendFyne)
	v.SetDefault("sketch", "spiral")
	v.SetDefault("canvas.width", 800)
	v.SetDefault("canvas.height", 600)
	v.SetDefault("canvas.title", "TurtleBoard")
	v.SetDefault("frame.fps", 60)
	v.SetDefault("frame.count", 1)
	v.SetDefault("net.port", 8888)
	v.SetDefault("net.mdns", true)
	v.SetDefault("export.png", "turtle.png")
	v.SetDefault("export.pdf", "turtle.pdf")
	v.SetDefault("random.seed", 0)
}

// Validate checks the values Load cannot default away.
func (c Config) Validate() error {
	switch c.Frontend {
	case FrontendFyne, FrontendEbiten, FrontendHeadless:
	default:
		return fmt.Errorf("%w %q", ErrUnknownFrontend, c.Frontend)
	}
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("canvas size must be positive, got %dx%d", c.Canvas.Width, c.Canvas.Height)
	}
	if c.Frame.FPS <= 0 {
		return fmt.Errorf("frame.fps must be positive, got %d", c.Frame.FPS)
	}
	if c.Frame.Count < 0 {
		return fmt.Errorf("frame.count must not be negative, got %d", c.Frame.Count)
	}
	if c.Net.Port <= 0 || c.Net.Port > 65535 {
		return fmt.Errorf("net.port out of range: %d", c.Net.Port)
	}
	return nil
}

// FrameInterval is the time between frames at the configured rate.
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.Frame.FPS)
}
