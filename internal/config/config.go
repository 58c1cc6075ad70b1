package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	TIE_BREAK_RANDOM = "random"
	TIE_BREAK_FIRST  = "first"
)

const defaultEVStep = 4

type Config struct {
	Debug bool
	// LogDir holds the rolling log files.
	LogDir string
	// EVStep is the EV granularity, in 0-63 units, of generated inference candidates.
	EVStep        uint
	PerishSong    bool
	ObservationDB string
	TieBreak      string
}

func DefaultConfigDir() string {
	configDir, _ := os.UserConfigDir()
	return filepath.Join(configDir, "porygon")
}

func DefaultConfigLocation() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// Load reads the config at path, writing a default one there when the file is missing or empty.
func Load(path string) (Config, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return Config{}, fmt.Errorf("creating config dir: %w", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	if len(contents) == 0 {
		config := populateConfig(Config{TieBreak: TIE_BREAK_RANDOM}, filepath.Dir(path))
		if err := Save(path, config); err != nil {
			return Config{}, err
		}
		return config, nil
	}

	config := Config{}
	if err := json.Unmarshal(contents, &config); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	config = populateConfig(config, filepath.Dir(path))
	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return config, nil
}

func Save(path string, config Config) error {
	jsonBytes, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, jsonBytes, 0666); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

var ErrBadTieBreak = errors.New("tie break must be random or first")

func (c Config) Validate() error {
	if c.TieBreak != TIE_BREAK_RANDOM && c.TieBreak != TIE_BREAK_FIRST {
		return fmt.Errorf("%w: %q", ErrBadTieBreak, c.TieBreak)
	}
	return nil
}

// populateConfig fills every unset field relative to configDir.
func populateConfig(config Config, configDir string) Config {
	if config.LogDir == "" {
		config.LogDir = filepath.Join(configDir, "logs")
	}
	if config.EVStep == 0 {
		config.EVStep = defaultEVStep
	}
	if config.ObservationDB == "" {
		config.ObservationDB = filepath.Join(configDir, "observations.db")
	}
	if config.TieBreak == "" {
		config.TieBreak = TIE_BREAK_RANDOM
	}
	return config
}
