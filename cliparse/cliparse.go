// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/danielhkuo/slot-poll/models"
	"github.com/danielhkuo/slot-poll/registry"
)

const defaultEnvFile = ".env"

type Config struct {
	MaxPolls        int
	MaxSlots        int
	MaxParticipants int
	LogLevel        string
	Prompt          string
	EnvFile         string
}

// Environment fallbacks, applied when the matching flag is not given
type envConfig struct {
	MaxPolls        int    `env:"POLL_MAX_POLLS"`
	MaxSlots        int    `env:"POLL_MAX_SLOTS"`
	MaxParticipants int    `env:"POLL_MAX_PARTICIPANTS"`
	LogLevel        string `env:"LOG_LEVEL" envDefault:"info"`
	Prompt          string `env:"POLL_PROMPT" envDefault:"> "`
}

// ParseFlags reads flags, then fills anything not given on the command line
// from the environment (after loading the dotenv file).
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	flags := flag.NewFlagSet("slot-poll", flag.ContinueOnError)

	flags.IntVar(&cfg.MaxPolls, "max-polls", 0, "Maximum number of polls (0 = unlimited)")
	flags.IntVar(&cfg.MaxSlots, "max-slots", 0, "Maximum slots per poll")
	flags.IntVar(&cfg.MaxParticipants, "max-participants", 0, "Maximum participants per poll (0 = unlimited)")
	flags.StringVar(&cfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&cfg.Prompt, "prompt", "", "Console prompt")
	flags.StringVar(&cfg.EnvFile, "env-file", "", "Dotenv file to load")

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	set := map[string]bool{}
	flags.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if cfg.EnvFile == "" {
		cfg.EnvFile = os.Getenv("ENV_FILE")
	}
	if err := loadEnvFile(cfg.EnvFile); err != nil {
		return Config{}, err
	}

	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	// Fall back to environment variables
	if !set["max-polls"] {
		cfg.MaxPolls = ec.MaxPolls
	}
	if !set["max-slots"] {
		cfg.MaxSlots = ec.MaxSlots
	}
	if !set["max-participants"] {
		cfg.MaxParticipants = ec.MaxParticipants
	}
	if !set["log-level"] {
		cfg.LogLevel = ec.LogLevel
	}
	if !set["prompt"] {
		cfg.Prompt = ec.Prompt
	}

	if cfg.MaxSlots == 0 {
		cfg.MaxSlots = models.MaxSlotCount
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// RegistryOptions converts the limits into registry options
func (c Config) RegistryOptions() registry.Options {
	return registry.Options{
		MaxPolls:        c.MaxPolls,
		MaxSlots:        c.MaxSlots,
		MaxParticipants: c.MaxParticipants,
	}
}

// Level returns the configured slog level
func (c Config) Level() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

func (c Config) validate() error {
	if c.MaxPolls < 0 {
		return errors.New("max polls must not be negative")
	}
	if c.MaxParticipants < 0 {
		return errors.New("max participants must not be negative")
	}
	if c.MaxSlots < 0 || c.MaxSlots > models.MaxSlotCount {
		return fmt.Errorf("max slots must be between 1 and %d", models.MaxSlotCount)
	}

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return nil
}

// loadEnvFile loads a dotenv file without overriding variables already set.
// A missing default file is ignored; a missing explicit file is an error.
func loadEnvFile(path string) error {
	explicit := path != ""
	if !explicit {
		path = defaultEnvFile
	}

	err := godotenv.Load(path)
	if err == nil {
		return nil
	}
	if !explicit && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to load env file %s: %w", path, err)
}
