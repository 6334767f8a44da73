// Package config provides configuration loading for cmd/bptreectl, a
// much smaller analogue of the teacher's LDAP server Config — this repo
// has no server, directory, ACL, or security surface, only the handful
// of settings the CLI demo needs to build an index and a logger.
package config

import (
	"os"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

// Config holds the complete CLI configuration.
type Config struct {
	Index   IndexConfig   `toml:"index"`
	Logging LoggingConfig `toml:"logging"`
}

// IndexConfig holds index construction settings.
type IndexConfig struct {
	// Order is the B+ tree branching factor. Zero means "use the
	// library default".
	Order int `toml:"order"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		Index:   IndexConfig{Order: 0},
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}
}

// Load reads and parses a TOML configuration file at path, falling back
// to field-by-field defaults for anything the file omits.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config: reading %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "config: parsing %s", path)
	}
	return cfg, nil
}
