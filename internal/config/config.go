// Package config loads fragtext settings from TOML or YAML files and the
// environment.
//
// Sources are applied in order over Default(): the config file first, then
// FRAGTEXT_* environment variables. Keys missing from a source keep their
// previous value.
package config

import (
	"errors"
	"fmt"

	"github.com/dshills/fragtext/internal/logging"
)

// Policy selects what the inspector does with a malformed UTF-8 sequence.
type Policy string

const (
	// PolicyStrict stops at the first malformed sequence and reports it.
	PolicyStrict Policy = "strict"
	// PolicyReplace prints U+FFFD in place of each malformed byte.
	PolicyReplace Policy = "replace"
	// PolicySkip drops malformed bytes.
	PolicySkip Policy = "skip"
)

// Valid reports whether p is a known policy.
func (p Policy) Valid() bool {
	switch p {
	case PolicyStrict, PolicyReplace, PolicySkip:
		return true
	}
	return false
}

// Config holds all fragtext settings.
type Config struct {
	Log    LogConfig    `toml:"log" yaml:"log"`
	Decode DecodeConfig `toml:"decode" yaml:"decode"`
	Output OutputConfig `toml:"output" yaml:"output"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level" yaml:"level"`
}

// DecodeConfig configures rune decoding.
type DecodeConfig struct {
	Policy Policy `toml:"policy" yaml:"policy"`
}

// OutputConfig configures how inspector results are printed.
type OutputConfig struct {
	// Offsets prefixes each rune or byte with its logical offset.
	Offsets bool `toml:"offsets" yaml:"offsets"`
	// Quote prints text results as Go quoted strings.
	Quote bool `toml:"quote" yaml:"quote"`
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Log:    LogConfig{Level: "info"},
		Decode: DecodeConfig{Policy: PolicyStrict},
		Output: OutputConfig{Offsets: true},
	}
}

// Validate checks that every field holds a supported value.
func (c Config) Validate() error {
	if _, ok := logging.ParseLevel(c.Log.Level); !ok {
		return fmt.Errorf("%w: log.level %q", ErrInvalidConfig, c.Log.Level)
	}
	if !c.Decode.Policy.Valid() {
		return fmt.Errorf("%w: decode.policy %q (want strict, replace or skip)", ErrInvalidConfig, c.Decode.Policy)
	}
	return nil
}

// LogLevel returns the parsed log level.
func (c Config) LogLevel() logging.Level {
	level, _ := logging.ParseLevel(c.Log.Level)
	return level
}

// Load builds a Config from Default, the file at path (skipped when path is
// empty or the file does not exist) and env (skipped when nil).
func Load(fsys FileSystem, path string, env *EnvLoader) (Config, error) {
	cfg := Default()
	if path != "" {
		loader, err := LoaderFor(fsys, path)
		if err != nil {
			return cfg, err
		}
		if err := loader.Load(&cfg); err != nil {
			return cfg, err
		}
	}
	if env != nil {
		if err := env.Load(&cfg); err != nil {
			return cfg, err
		}
	}
	return cfg, cfg.Validate()
}
