// Package config loads user settings from an ini file
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"

	"github.com/lixenwraith/trophy-snake/parameter"
)

const (
	appDir   = "trophy-snake"
	fileName = "config.ini"
)

type GameSection struct {
	Seed uint64 `ini:"seed"` // 0 picks a time-based seed
}

type AudioSection struct {
	Enabled bool    `ini:"enabled"`
	Volume  float64 `ini:"volume"`
}

type LogSection struct {
	Debug bool   `ini:"debug"`
	Dir   string `ini:"dir"`
}

// Config mirrors the ini file layout
type Config struct {
	Game  GameSection  `ini:"game"`
	Audio AudioSection `ini:"audio"`
	Log   LogSection   `ini:"log"`
}

// Default returns the settings used when no file is present
func Default() *Config {
	return &Config{
		Audio: AudioSection{Enabled: true, Volume: parameter.DefaultVolume},
		Log:   LogSection{Dir: "logs"},
	}
}

// DefaultPath returns config.ini under the user config directory
// ($XDG_CONFIG_HOME or ~/.config on Linux)
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return fileName
	}
	return filepath.Join(dir, appDir, fileName)
}

// Load reads path over the defaults; a missing file is not an error
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath()
	}

	iniFile, err := ini.LooseLoad(path)
	if err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := iniFile.MapTo(cfg); err != nil {
		return cfg, fmt.Errorf("config: map %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values no component can use
func (c *Config) Validate() error {
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio volume %g outside 0..1", c.Audio.Volume)
	}
	if c.Log.Dir == "" {
		return fmt.Errorf("log dir must not be empty")
	}
	return nil
}

// Save writes cfg to path, creating parent directories
func Save(path string, cfg *Config) error {
	f := ini.Empty()
	if err := f.ReflectFrom(cfg); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create dir: %w", err)
	}
	if err := f.SaveTo(path); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}
