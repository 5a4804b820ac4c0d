// Package config loads the host configuration: which storage backend
// holds the pet, how fast the host ticks, and any rate overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"pocketpet/internal/pet"
)

type Config struct {
	Pet   PetConfig   `yaml:"pet"`
	Store StoreConfig `yaml:"store"`
	Log   LogConfig   `yaml:"log"`
}

type PetConfig struct {
	Name         string        `yaml:"name"`
	TickInterval time.Duration `yaml:"tick_interval"`

	// Rates per decay cycle; zero means "use the reference rate".
	// SleepHungerRate is separate so halving is a choice, not an
	// integer-division accident.
	HungerRate        int `yaml:"hunger_rate"`
	SleepHungerRate   int `yaml:"sleep_hunger_rate"`
	HappinessDecay    int `yaml:"happiness_decay"`
	EnergyRegen       int `yaml:"energy_regen"`
	EnergyDrain       int `yaml:"energy_drain"`
	PresenceBoost     int `yaml:"presence_boost"`
	FeedAmount        int `yaml:"feed_amount"`
	PetHappinessBoost int `yaml:"pet_happiness_boost"`
	SleepThreshold    int `yaml:"sleep_threshold"`
	WakeThreshold     int `yaml:"wake_threshold"`

	DecayCycleTicks int `yaml:"decay_cycle_ticks"`
	SaveCycleTicks  int `yaml:"save_cycle_ticks"`
	AgeCycleTicks   int `yaml:"age_cycle_ticks"`
}

type StoreConfig struct {
	Backend string `yaml:"backend"` // "file" or "sqlite"
	Path    string `yaml:"path"`
}

type LogConfig struct {
	// The TUI owns the terminal, so logs go to a file.
	Path  string `yaml:"path"`
	Level string `yaml:"level"`
}

// Load reads the YAML config at path, layering it over defaults. A
// missing file is fine; env vars override both.
func Load(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if env := os.Getenv("POCKETPET_STORE"); env != "" {
		cfg.Store.Backend = env
	}
	if env := os.Getenv("POCKETPET_STATE_PATH"); env != "" {
		cfg.Store.Path = env
	}
	if env := os.Getenv("POCKETPET_LOG_LEVEL"); env != "" {
		cfg.Log.Level = env
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SimConfig maps the YAML section onto the simulator's Config,
// substituting reference rates for anything left unset.
func (p PetConfig) SimConfig() pet.Config {
	cfg := pet.DefaultConfig()
	if p.Name != "" {
		cfg.Name = p.Name
	}
	if p.TickInterval > 0 {
		cfg.TickInterval = p.TickInterval
	}
	if p.HungerRate > 0 {
		cfg.HungerRate = p.HungerRate
		// Track the configured awake rate unless overridden below.
		cfg.SleepHungerRate = p.HungerRate / 2
	}
	if p.SleepHungerRate > 0 {
		cfg.SleepHungerRate = p.SleepHungerRate
	}
	if p.HappinessDecay > 0 {
		cfg.HappinessDecay = p.HappinessDecay
	}
	if p.EnergyRegen > 0 {
		cfg.EnergyRegen = p.EnergyRegen
	}
	if p.EnergyDrain > 0 {
		cfg.EnergyDrain = p.EnergyDrain
	}
	if p.PresenceBoost > 0 {
		cfg.PresenceBoost = p.PresenceBoost
	}
	if p.FeedAmount > 0 {
		cfg.FeedAmount = p.FeedAmount
	}
	if p.PetHappinessBoost > 0 {
		cfg.PetHappinessBoost = p.PetHappinessBoost
	}
	if p.SleepThreshold > 0 {
		cfg.SleepThreshold = p.SleepThreshold
	}
	if p.WakeThreshold > 0 {
		cfg.WakeThreshold = p.WakeThreshold
	}
	if p.DecayCycleTicks > 0 {
		cfg.DecayCycleTicks = p.DecayCycleTicks
	}
	if p.SaveCycleTicks > 0 {
		cfg.SaveCycleTicks = p.SaveCycleTicks
	}
	if p.AgeCycleTicks > 0 {
		cfg.AgeCycleTicks = p.AgeCycleTicks
	}
	return cfg
}

func defaults() *Config {
	return &Config{
		Store: StoreConfig{
			Backend: "file",
			Path:    defaultStatePath("state.json"),
		},
		Log: LogConfig{
			Path:  defaultStatePath("pocketpet.log"),
			Level: "info",
		},
	}
}

// defaultStatePath puts state under ~/.config/pocketpet, falling back
// to the working directory when there is no home.
func defaultStatePath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return name
	}
	return filepath.Join(home, ".config", "pocketpet", name)
}

func validate(cfg *Config) error {
	switch cfg.Store.Backend {
	case "file", "sqlite":
	default:
		return fmt.Errorf("unknown store backend %q (want file or sqlite)", cfg.Store.Backend)
	}
	if cfg.Store.Path == "" {
		return fmt.Errorf("store path must not be empty")
	}
	p := cfg.Pet
	for _, v := range []int{
		p.HungerRate, p.SleepHungerRate, p.HappinessDecay, p.EnergyRegen,
		p.EnergyDrain, p.PresenceBoost, p.FeedAmount, p.PetHappinessBoost,
		p.SleepThreshold, p.WakeThreshold,
		p.DecayCycleTicks, p.SaveCycleTicks, p.AgeCycleTicks,
	} {
		if v < 0 {
			return fmt.Errorf("pet rates and cadences must not be negative")
		}
	}
	return nil
}
