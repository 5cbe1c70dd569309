package config

import (
	"fmt"
	"nim/game"
	"nim/meta"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// settings mirrors the raw flag, env and config file values.
type settings struct {
	NumRed      int    `mapstructure:"num-red"`
	NumBlue     int    `mapstructure:"num-blue"`
	Version     string `mapstructure:"version"`
	FirstPlayer string `mapstructure:"first-player"`
	LogLevel    string `mapstructure:"log-level"`
}

type Config struct {
	NumRed      int
	NumBlue     int
	Variant     game.Variant
	FirstPlayer game.Player
	Depth       int // 0 when not set
	LogLevel    zerolog.Level
}

// Load parses args (without the program name). Flags win over NIM_* environment
// variables, which win over the optional --config file.
func Load(args []string) (*Config, error) {
	flags := pflag.NewFlagSet("nim", pflag.ContinueOnError)
	flags.Int("num-red", meta.NUM_RED, "Number of red marbles.")
	flags.Int("num-blue", meta.NUM_BLUE, "Number of blue marbles.")
	flags.String("version", meta.VERSION, "Game version: standard or misere.")
	flags.String("first-player", meta.FIRST_PLAYER, "First player: computer or human.")
	flags.Int("depth", 0, "Search depth for AI (optional, defaults to searching till the end of the game).")
	flags.String("log-level", meta.LOG_LEVEL, "Log level: debug, info, warn or error.")
	flags.String("config", "", "Optional config file (yaml, json or toml).")
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(meta.ENV_PREFIX)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}

	if path, _ := flags.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var s settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg, err := s.validate()
	if err != nil {
		return nil, err
	}

	// An unchanged flag does not count as set, so the default of 0 is never used
	if v.IsSet("depth") {
		cfg.Depth = v.GetInt("depth")
		if cfg.Depth < 1 {
			return nil, fmt.Errorf("invalid depth %d: must be positive", cfg.Depth)
		}
	}

	return cfg, nil
}

func (s settings) validate() (*Config, error) {
	if s.NumRed < 0 {
		return nil, fmt.Errorf("invalid num-red %d: must not be negative", s.NumRed)
	}
	if s.NumBlue < 0 {
		return nil, fmt.Errorf("invalid num-blue %d: must not be negative", s.NumBlue)
	}
	variant, err := game.ParseVariant(s.Version)
	if err != nil {
		return nil, err
	}
	first, err := game.ParsePlayer(s.FirstPlayer)
	if err != nil {
		return nil, err
	}
	level, err := zerolog.ParseLevel(s.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log-level %q: %w", s.LogLevel, err)
	}

	return &Config{
		NumRed:      s.NumRed,
		NumBlue:     s.NumBlue,
		Variant:     variant,
		FirstPlayer: first,
		LogLevel:    level,
	}, nil
}

func (c *Config) InitialState() game.GameState {
	return game.NewGameState(c.NumRed, c.NumBlue, c.Variant, c.FirstPlayer)
}

// EffectiveDepth falls back to the number of marbles, the longest possible
// game, so an unset depth always searches to the end.
func (c *Config) EffectiveDepth() int {
	if c.Depth > 0 {
		return c.Depth
	}
	return c.NumRed + c.NumBlue
}
