package config

import (
	"fmt"
	"os"

	"gopkg.in/ini.v1"

	"github.com/pezware/mirubato-tools/internal/match"
)

// Config holds tool-wide defaults read from an optional ini file.
type Config struct {
	// Threshold is the minimum similarity for the similar command.
	Threshold float64
	// OutputPath is where cleaned exports are written when -o is not given.
	OutputPath string
}

func Default() Config {
	return Config{Threshold: match.DefaultThreshold}
}

// Load reads the tool config. An empty path or a missing file yields the
// defaults; a present but unreadable file is an error.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return c, nil
	}

	cfg, err := ini.Load(path)
	if err != nil {
		return c, fmt.Errorf("load config %s: %w", path, err)
	}

	c.Threshold = cfg.Section("match").Key("threshold").MustFloat64(c.Threshold)
	c.OutputPath = cfg.Section("output").Key("path").String()
	return c, nil
}
