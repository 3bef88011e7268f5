package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
)

// HostConfig contains the process level settings of the arcade hosts.
// Values come from the environment and may be overridden by CLI flags.
type HostConfig struct {
	DBPath     string `env:"PETARCADE_DB"         envDefault:"~/.petarcade/petarcade.db"`
	ConfigPath string `env:"PETARCADE_CONFIG"`
	Owner      string `env:"PETARCADE_OWNER"      envDefault:"local"`
	FPS        int    `env:"PETARCADE_FPS"        envDefault:"60"`
	Seed       int64  `env:"PETARCADE_SEED"       envDefault:"0"` // 0 = time based
	SSHAddr    string `env:"PETARCADE_SSH_ADDR"   envDefault:":23234"`
	HTTPAddr   string `env:"PETARCADE_HTTP_ADDR"`
	LogLevel   string `env:"PETARCADE_LOG_LEVEL"  envDefault:"info"`
}

// ParseEnv loads host configuration from environment variables.
func ParseEnv() (HostConfig, error) {
	var cfg HostConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if cfg.FPS <= 0 {
		cfg.FPS = 60
	}
	cfg.DBPath = ExpandHome(cfg.DBPath)
	return cfg, nil
}

// ExpandHome replaces a leading "~/" with the user's home directory.
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
