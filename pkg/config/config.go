// Package config loads optional converter settings from a TOML file.
//
// The config file is entirely optional; every field has a default and
// command-line flags override file values. Example:
//
//	namespace = "https://example.org/vocab/"
//	max_depth = 64
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/johnymontana/json-to-rdf/pkg/convert"
	"github.com/johnymontana/json-to-rdf/pkg/vocab"
)

// Config holds conversion settings.
type Config struct {
	// Namespace is the base IRI prefix for vocabulary terms.
	Namespace string `toml:"namespace"`

	// MaxDepth bounds JSON container nesting during conversion.
	MaxDepth int `toml:"max_depth"`
}

// Default returns the built-in settings used when no config file is given.
func Default() Config {
	return Config{
		Namespace: vocab.DefaultNamespace,
		MaxDepth:  convert.DefaultMaxDepth,
	}
}

// Load reads a TOML config file at path on top of the defaults.
// Fields absent from the file keep their default values; unknown keys
// are rejected so typos surface instead of being silently ignored.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}
