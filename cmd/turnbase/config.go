package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const defaultConfigFile = "turnbase.yaml"

type config struct {
	Game       string `yaml:"game"`
	Iterations int    `yaml:"iterations"`
	Verbose    bool   `yaml:"verbose"`
}

// loadConfig reads path, or the default file if path is empty. A missing
// default file is fine; an explicitly named file must exist.
func loadConfig(path string) (config, error) {
	loaded := config{
		Game:       "tictactoe",
		Iterations: 2000,
	}

	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return loaded, nil
	}
	if err != nil {
		return loaded, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return loaded, fmt.Errorf("parse config %s: %w", path, err)
	}
	if loaded.Iterations <= 0 {
		return loaded, fmt.Errorf("config %s: iterations must be positive", path)
	}
	return loaded, nil
}
