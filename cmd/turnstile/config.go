package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config drives a scripted demo run.
type Config struct {
	Price int    `yaml:"price"`
	Steps []Step `yaml:"steps"`
}

// Step is one scripted interaction: action "coin" with a value, or "push".
type Step struct {
	Action string `yaml:"action"`
	Value  int    `yaml:"value"`
}

func loadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.Price <= 0 {
		cfg.Price = defaultPrice
	}

	return cfg, nil
}
