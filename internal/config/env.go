package config

import (
	"fmt"
	"os"
	"strings"
)

// EnvLoader loads configuration from environment variables.
type EnvLoader struct {
	prefix string
	lookup func(string) (string, bool)
}

// NewEnvLoader creates a loader reading variables such as FRAGTEXT_LOG_LEVEL.
// The prefix should include the trailing underscore (e.g., "FRAGTEXT_").
func NewEnvLoader(prefix string) *EnvLoader {
	return NewEnvLoaderWithLookup(prefix, os.LookupEnv)
}

// NewEnvLoaderWithLookup creates a loader with a custom variable lookup.
func NewEnvLoaderWithLookup(prefix string, lookup func(string) (string, bool)) *EnvLoader {
	return &EnvLoader{prefix: prefix, lookup: lookup}
}

// Load overwrites cfg fields whose variables are set.
// Note: Empty string values are treated as valid values, not as unset.
func (l *EnvLoader) Load(cfg *Config) error {
	if v, ok := l.lookup(l.prefix + "LOG_LEVEL"); ok {
		cfg.Log.Level = v
	}
	if v, ok := l.lookup(l.prefix + "DECODE_POLICY"); ok {
		cfg.Decode.Policy = Policy(strings.ToLower(v))
	}
	for name, field := range map[string]*bool{
		"OUTPUT_OFFSETS": &cfg.Output.Offsets,
		"OUTPUT_QUOTE":   &cfg.Output.Quote,
	} {
		v, ok := l.lookup(l.prefix + name)
		if !ok {
			continue
		}
		b, err := parseBool(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", l.prefix, name, err)
		}
		*field = b
	}
	return nil
}

// parseBool accepts the usual spellings of true and false.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0":
		return false, nil
	}
	return false, fmt.Errorf("%w: not a boolean: %q", ErrInvalidConfig, s)
}
