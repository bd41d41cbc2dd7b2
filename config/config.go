package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go-simon/game"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "SIMON_"

// ControllerType identifies the kind of controller
type ControllerType string

const (
	ControllerLaunchpadX ControllerType = "launchpad-x"
	ControllerKeyboard   ControllerType = "keyboard"
)

// ControllerConfig defines a saved controller configuration
type ControllerConfig struct {
	PortName    string         `json:"portName"`
	Type        ControllerType `json:"type"`
	AutoConnect bool           `json:"autoConnect"`
}

// SynthOutputConfig defines the MIDI port tones are played on
type SynthOutputConfig struct {
	PortName string `json:"portName,omitempty" env:"PORT"`
	Channel  int    `json:"channel,omitempty" env:"CHANNEL"`
}

// RulesConfig holds the tunable game rules
type RulesConfig struct {
	MaxLevel                int  `json:"maxLevel" env:"MAX_LEVEL"`
	ScaleLengthByDifficulty bool `json:"scaleLengthByDifficulty" env:"SCALE_LENGTH"`
	LongPressMS             int  `json:"longPressMs" env:"LONG_PRESS_MS"`
	IntroPauseMS            int  `json:"introPauseMs" env:"INTRO_PAUSE_MS"`
	RecoverPauseMS          int  `json:"recoverPauseMs" env:"RECOVER_PAUSE_MS"`
	Fanfare                 bool `json:"fanfare" env:"FANFARE"`
}

// InputConfig tunes button sampling
type InputConfig struct {
	DebounceMS int `json:"debounceMs" env:"DEBOUNCE_MS"`
	TapHoldMS  int `json:"tapHoldMs" env:"TAP_HOLD_MS"` // how long a terminal key counts as held
}

// Config is the main configuration structure
type Config struct {
	Controllers []ControllerConfig `json:"controllers,omitempty"`
	SynthOutput SynthOutputConfig  `json:"synthOutput,omitempty" envPrefix:"SYNTH_"`
	Rules       RulesConfig        `json:"rules" envPrefix:"RULES_"`
	Input       InputConfig        `json:"input" envPrefix:"INPUT_"`
	LoopMS      int                `json:"loopMs" env:"LOOP_MS"`
	PalettePath string             `json:"palette,omitempty" env:"PALETTE"`
	Debug       bool               `json:"debug,omitempty" env:"DEBUG"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	r := game.DefaultRules()
	return &Config{
		Controllers: []ControllerConfig{
			{
				PortName:    "Launchpad X LPX MIDI",
				Type:        ControllerLaunchpadX,
				AutoConnect: true,
			},
		},
		SynthOutput: SynthOutputConfig{Channel: 1},
		Rules: RulesConfig{
			MaxLevel:                r.MaxLevel,
			ScaleLengthByDifficulty: r.ScaleLengthByDifficulty,
			LongPressMS:             int(r.LongPress / time.Millisecond),
			IntroPauseMS:            int(r.IntroPause / time.Millisecond),
			RecoverPauseMS:          int(r.RecoverPause / time.Millisecond),
			Fanfare:                 r.Fanfare,
		},
		Input: InputConfig{
			DebounceMS: 50,
			TapHoldMS:  150,
		},
		LoopMS: 5,
	}
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "go-simon"), nil
}

// ConfigPath returns the full path to config.json
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or returns defaults if not found
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path over the defaults
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// ApplyEnv overrides fields from SIMON_* environment variables
func (c *Config) ApplyEnv() error {
	if err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	// Create directory if it doesn't exist
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// GameRules converts the rules section for the game machine
func (c *Config) GameRules() game.Rules {
	return game.Rules{
		MaxLevel:                c.Rules.MaxLevel,
		ScaleLengthByDifficulty: c.Rules.ScaleLengthByDifficulty,
		LongPress:               time.Duration(c.Rules.LongPressMS) * time.Millisecond,
		IntroPause:              time.Duration(c.Rules.IntroPauseMS) * time.Millisecond,
		RecoverPause:            time.Duration(c.Rules.RecoverPauseMS) * time.Millisecond,
		Fanfare:                 c.Rules.Fanfare,
	}
}

// LoopPeriod is the engine poll period, at least 1ms
func (c *Config) LoopPeriod() time.Duration {
	if c.LoopMS < 1 {
		return time.Millisecond
	}
	return time.Duration(c.LoopMS) * time.Millisecond
}

// FindController finds a controller config by port name
func (c *Config) FindController(portName string) *ControllerConfig {
	for i := range c.Controllers {
		if c.Controllers[i].PortName == portName {
			return &c.Controllers[i]
		}
	}
	return nil
}

// AddController adds or updates a controller config
func (c *Config) AddController(ctrl ControllerConfig) {
	for i := range c.Controllers {
		if c.Controllers[i].PortName == ctrl.PortName {
			c.Controllers[i] = ctrl
			return
		}
	}
	c.Controllers = append(c.Controllers, ctrl)
}

// Remember records a newly seen controller and saves the config. It reports
// whether anything was added; known ports are left untouched.
func (c *Config) Remember(portName string, kind ControllerType) (bool, error) {
	if portName == "" || c.FindController(portName) != nil {
		return false, nil
	}
	c.AddController(ControllerConfig{PortName: portName, Type: kind, AutoConnect: true})
	if err := c.Save(); err != nil {
		return true, fmt.Errorf("save config: %w", err)
	}
	return true, nil
}

// KeyboardPorts returns the auto-connect keyboard port names
func (c *Config) KeyboardPorts() []string {
	var result []string
	for _, ctrl := range c.Controllers {
		if ctrl.AutoConnect && ctrl.Type == ControllerKeyboard {
			result = append(result, ctrl.PortName)
		}
	}
	return result
}
