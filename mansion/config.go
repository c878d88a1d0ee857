package mansion

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/itchio/ichor/comm"
	"github.com/pkg/errors"
)

// Config is the on-disk configuration, e.g.
//
//	base_url = "https://itch.io/api"
//	api_version = 1
//	log_level = "info"
type Config struct {
	BaseURL    string `toml:"base_url"`
	APIVersion uint8  `toml:"api_version"`
	// APIKey is accepted here, but a key file or the environment is better
	APIKey   string `toml:"api_key"`
	LogLevel string `toml:"log_level"`
}

// DefaultConfigDir is where the key file and config file live by default
func DefaultConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(dir, "ichor")
}

// LoadConfig parses a TOML config file. A missing file, or an
// empty path, give an empty config.
func LoadConfig(path string) (*Config, error) {
	config := &Config{}
	if path == "" {
		return config, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config, nil
	}

	md, err := toml.DecodeFile(path, config)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config file %s", path)
	}

	for _, key := range md.Undecoded() {
		comm.Warnf("Unknown key %q in %s, ignoring", key.String(), path)
	}

	return config, nil
}

func (c *Config) GetLogLevel() slog.Leveler {
	switch strings.ToLower(c.LogLevel) {
	case "error":
		return slog.LevelError
	case "warning", "warn":
		return slog.LevelWarn
	case "", "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	}
	comm.Warnf("Invalid log level %q, defaulting to info", c.LogLevel)
	return slog.LevelInfo
}
