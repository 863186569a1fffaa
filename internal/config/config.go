// Package config loads the configuration of the lazydemo command.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds the demo configuration loaded from files and environment variables.
type Config struct {
	LogLevel string `mapstructure:"log_level"` // zerolog level name
	Quiz     Quiz   `mapstructure:"quiz"`
	Hotel    Hotel  `mapstructure:"hotel"`
}

// Quiz configures the mock question backend.
type Quiz struct {
	Count int           `mapstructure:"count"` // number of generated questions
	Delay time.Duration `mapstructure:"delay"` // latency of the question list
}

// Hotel configures the mock hotel backend and the simulated screen.
type Hotel struct {
	Rooms          int           `mapstructure:"rooms"`           // number of rooms
	ListDelay      time.Duration `mapstructure:"list_delay"`      // latency of the room list
	InitialDelay   time.Duration `mapstructure:"initial_delay"`   // latency of the initial price page
	MoreDelay      time.Duration `mapstructure:"more_delay"`      // latency of the remaining price page
	PageSize       int           `mapstructure:"page_size"`       // prices shown before expanding
	ViewportHeight float64       `mapstructure:"viewport_height"` // height of the simulated screen
	CardHeight     float64       `mapstructure:"card_height"`     // height of one room card
	CardGap        float64       `mapstructure:"card_gap"`        // space between two room cards
}

// Load reads the configuration.
// If path is empty, it looks for an optional lazydemo.yaml in ./config and the working directory.
// LAZYDEMO_* environment variables override both, e.g. LAZYDEMO_HOTEL_PAGE_SIZE.
func Load(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("lazydemo")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	v.SetDefault("log_level", "info")
	v.SetDefault("quiz.count", 5000)
	v.SetDefault("quiz.delay", "1500ms")
	v.SetDefault("hotel.rooms", 10)
	v.SetDefault("hotel.list_delay", "500ms")
	v.SetDefault("hotel.initial_delay", "800ms")
	v.SetDefault("hotel.more_delay", "600ms")
	v.SetDefault("hotel.page_size", 2)
	v.SetDefault("hotel.viewport_height", 800.0)
	v.SetDefault("hotel.card_height", 240.0)
	v.SetDefault("hotel.card_gap", 16.0)

	v.SetEnvPrefix("LAZYDEMO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configured sizes.
func (c *Config) Validate() error {
	switch {
	case c.Quiz.Count < 0:
		return fmt.Errorf("%w: quiz.count must not be negative", ErrInvalidConfig)
	case c.Hotel.Rooms < 0:
		return fmt.Errorf("%w: hotel.rooms must not be negative", ErrInvalidConfig)
	case c.Hotel.PageSize <= 0:
		return fmt.Errorf("%w: hotel.page_size must be positive", ErrInvalidConfig)
	case c.Hotel.ViewportHeight <= 0 || c.Hotel.CardHeight <= 0:
		return fmt.Errorf("%w: hotel.viewport_height and hotel.card_height must be positive", ErrInvalidConfig)
	case c.Hotel.CardGap < 0:
		return fmt.Errorf("%w: hotel.card_gap must not be negative", ErrInvalidConfig)
	}
	return nil
}
