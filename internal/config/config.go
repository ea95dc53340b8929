package config

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

type Config struct {
	Backend BackendConfig `yaml:"backend"`
	Speech  SpeechConfig  `yaml:"speech"`
	Voices  VoicesConfig  `yaml:"voices"`
	Browse  BrowseConfig  `yaml:"browse"`
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
}

type BackendConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

type SpeechConfig struct {
	BinaryPath string `yaml:"binary_path"`
	Rate       int    `yaml:"rate"`
}

type VoicesConfig struct {
	// DataDir is watched for voice files being installed or removed.
	DataDir        string `yaml:"data_dir"`
	RescanSchedule string `yaml:"rescan_schedule"`
}

type BrowseConfig struct {
	Region   string `yaml:"region"`
	Language string `yaml:"language"`
}

type ServerConfig struct {
	// Addr enables the HTTP control surface when non-empty.
	Addr string `yaml:"addr"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

func (c *Config) Validate() error {
	if c.Backend.BaseURL == "" {
		return fmt.Errorf("backend.base_url is required")
	}
	if c.Backend.Timeout < 0 {
		return fmt.Errorf("backend.timeout must not be negative")
	}
	if c.Speech.Rate < 0 {
		return fmt.Errorf("speech.rate must not be negative")
	}

	if c.Backend.Timeout == 0 {
		c.Backend.Timeout = 10 * time.Second
	}
	if c.Speech.BinaryPath == "" {
		c.Speech.BinaryPath = "espeak-ng"
	}
	if c.Speech.Rate == 0 {
		c.Speech.Rate = 160
	}
	if c.Voices.RescanSchedule == "" {
		c.Voices.RescanSchedule = "@every 5m"
	}
	if _, err := cron.ParseStandard(c.Voices.RescanSchedule); err != nil {
		return fmt.Errorf("voices.rescan_schedule: %w", err)
	}
	if c.Browse.Region == "" {
		c.Browse.Region = "UG"
	}
	if c.Browse.Language == "" {
		c.Browse.Language = "en"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}
