package cmd

import (
	"log"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"
)

// config is the optional TOML configuration of the tool, looked up in
// $NWT_CONFIG or in the user configuration directory. All fields are
// optional; a missing file means defaults everywhere.
//
//	file = "/home/me/assets.json"
//	fallback_rate = 1350.0
type config struct {
	// File is the default assets file path.
	File string `toml:"file"`
	// FallbackRate replaces the USD/KRW rate when the market data
	// provider is unreachable.
	FallbackRate float64 `toml:"fallback_rate"`
}

// configPath returns the config file location, or "" when it cannot
// be determined.
func configPath() string {
	if p := os.Getenv("NWT_CONFIG"); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "nwt", "config.toml")
}

// loadConfig reads the config file. A missing file is not an error; a
// malformed one is reported and otherwise ignored.
func loadConfig() config {
	var cfg config
	p := configPath()
	if p == "" {
		return cfg
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return cfg
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		log.Printf("warning: ignoring malformed config %q: %v", p, err)
		return config{}
	}
	return cfg
}
