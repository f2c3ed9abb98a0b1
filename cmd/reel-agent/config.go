package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// AssetDir is the directory holding the pre-recorded wav responses.
	AssetDir string `yaml:"asset_dir"`
	// Playback enables the local miniaudio sink.
	Playback bool   `yaml:"playback"`
	Turns    []Turn `yaml:"turns"`
}

// Turn scripts one conversational turn: the fragments stand in for the
// streamed text deltas of a language-model response.
type Turn struct {
	Fragments []string `yaml:"fragments"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.AssetDir == "" {
		return nil, fmt.Errorf("asset_dir is required")
	}
	return &cfg, nil
}
