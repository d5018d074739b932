// Package config loads airgraph settings from YAML over built-in defaults and
// validates them before any component starts.
//
// Example airgraph.yaml:
//
//	dataset:
//	  path: data/flights_final.csv
//	  delimiter: ","
//	queries:
//	  farthest_limit: 10
//	server:
//	  addr: ":8080"
//	  metrics: true
//	log:
//	  level: info
//	  format: text
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/airgraph/dijkstra"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full settings tree.
type Config struct {
	Dataset DatasetConfig `yaml:"dataset"`
	Queries QueryConfig   `yaml:"queries"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
}

// DatasetConfig locates the route CSV.
type DatasetConfig struct {
	// Path is resolved against the config file directory when relative.
	Path      string `yaml:"path"`
	Delimiter string `yaml:"delimiter" validate:"len=1"`
}

// QueryConfig holds query defaults.
type QueryConfig struct {
	FarthestLimit int `yaml:"farthest_limit" validate:"gte=1,lte=1000"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr    string `yaml:"addr" validate:"required,hostname_port"`
	Metrics bool   `yaml:"metrics"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Dataset: DatasetConfig{Delimiter: ","},
		Queries: QueryConfig{FarthestLimit: dijkstra.DefaultFarthestLimit},
		Server:  ServerConfig{Addr: ":8080", Metrics: true},
		Log:     LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads path over Default and validates the result. An empty path yields
// the defaults. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if cfg.Dataset.Path != "" && !filepath.IsAbs(cfg.Dataset.Path) {
		cfg.Dataset.Path = filepath.Join(filepath.Dir(path), cfg.Dataset.Path)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

var validate = validator.New()

// Validate checks every field and reports all failures at once.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}

	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

// Rune returns the dataset delimiter as a rune.
func (d DatasetConfig) Rune() rune {
	r, _ := utf8.DecodeRuneInString(d.Delimiter)

	return r
}

// Logger builds a slog.Logger writing to w with the configured level and format.
func (l LogConfig) Logger(w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if l.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
