package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// searchPaths are tried in order when no explicit config file is given.
var searchPaths = []string{
	"~/.petarcade/minigames.yaml",
	"configs/minigames.yaml",
}

// Load loads the minigame configuration and normalizes it.
// Search order: customPath -> ~/.petarcade/minigames.yaml -> ./configs/minigames.yaml -> embedded default
func Load(customPath string) (Config, error) {
	cfg, _, err := LoadWithWarnings(customPath)
	return cfg, err
}

// LoadWithWarnings is Load that also reports every value Normalize replaced.
func LoadWithWarnings(customPath string) (Config, []string, error) {
	cfg, err := load(customPath)
	if err != nil {
		return cfg, nil, err
	}
	normalized, warnings := Normalize(cfg)
	return normalized, warnings, nil
}

func load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decode(data)
		if err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// A broken file in the search path is skipped, not fatal.
	for _, p := range searchPaths {
		data, err := os.ReadFile(ExpandHome(p))
		if err != nil {
			continue
		}
		if cfg, err := decode(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := decode(defaultMinigamesYAML)
	if err != nil {
		return DefaultConfig(), nil
	}
	return cfg, nil
}

// decode overlays YAML onto the built-in defaults, so omitted keys keep them.
func decode(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
