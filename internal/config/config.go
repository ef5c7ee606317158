package config

import (
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	astar "github.com/pdrpinto/gridastar"
	"github.com/pdrpinto/gridastar/internal/gridio"
)

// Log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config is the complete configuration.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Search  SearchConfig  `yaml:"search"`
	Render  RenderConfig  `yaml:"render"`
	HTTP    HTTPConfig    `yaml:"http"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if err := c.Search.Validate(); err != nil {
		return fmt.Errorf("search: %w", err)
	}
	if err := c.Render.Validate(); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := c.HTTP.Validate(); err != nil {
		return fmt.Errorf("http: %w", err)
	}
	return nil
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  slog.Level `yaml:"level"`
	Format string     `yaml:"format"`
}

// Validate validates the log configuration.
func (c *LogConfig) Validate() error {
	c.Format = strings.ToLower(c.Format)
	if c.Format == "" {
		c.Format = LogFormatText
	}
	return validation.ValidateStruct(c,
		validation.Field(&c.Format, validation.In(LogFormatText, LogFormatJSON)),
	)
}

// NewLogger builds a slog logger writing to w.
func (c *LogConfig) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.Level}
	if c.Format == LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// SearchConfig holds the default endpoints and batch parallelism.
type SearchConfig struct {
	Start   astar.Point `yaml:"start"`
	Goal    astar.Point `yaml:"goal"`
	Workers int         `yaml:"workers"`
}

// Validate validates the search configuration.
func (c *SearchConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Start, validation.By(nonNegative)),
		validation.Field(&c.Goal, validation.By(nonNegative)),
		validation.Field(&c.Workers, validation.Required, validation.Min(1), validation.Max(1024)),
	)
}

func nonNegative(value interface{}) error {
	p, _ := value.(astar.Point)
	if p.X < 0 || p.Y < 0 {
		return fmt.Errorf("coordinates must be non-negative, got (%d,%d)", p.X, p.Y)
	}
	return nil
}

// RenderConfig holds output settings of the solve command.
type RenderConfig struct {
	Style    string `yaml:"style"`
	Color    bool   `yaml:"color"`
	CellSize int    `yaml:"cell_size"`
}

// Validate validates the render configuration.
func (c *RenderConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Style, validation.By(func(value interface{}) error {
			_, err := gridio.ParseStyle(value.(string))
			return err
		})),
		validation.Field(&c.CellSize, validation.Required, validation.Min(1), validation.Max(256)),
	)
}

// HTTPConfig holds HTTP server configuration.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	MaxCells        int `yaml:"max_cells"`
	MaxSessions     int `yaml:"max_sessions"`
	ShutdownSeconds int `yaml:"shutdown_seconds"`
}

// Address returns HTTP server address.
func (c *HTTPConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate validates the HTTP configuration.
func (c *HTTPConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&c.MaxCells, validation.Required, validation.Min(1)),
		validation.Field(&c.MaxSessions, validation.Required, validation.Min(1)),
		validation.Field(&c.ShutdownSeconds, validation.Min(0)),
	)
}

// MetricsConfig toggles the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:  slog.LevelInfo,
			Format: LogFormatText,
		},
		Search: SearchConfig{
			Start:   astar.Point{X: 0, Y: 0},
			Goal:    astar.Point{X: 4, Y: 5},
			Workers: runtime.NumCPU(),
		},
		Render: RenderConfig{
			Style:    string(gridio.StyleEmoji),
			CellSize: 24,
		},
		HTTP: HTTPConfig{
			Port:            8080,
			MaxCells:        1 << 20,
			MaxSessions:     64,
			ShutdownSeconds: 5,
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}
