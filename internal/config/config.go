package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the application configuration. Empty file paths mean the
// embedded default catalogs; Seed 0 means a clock-derived seed.
type Config struct {
	WheelFile   string `mapstructure:"wheel_file"`
	PhrasesFile string `mapstructure:"phrases_file"`
	Seed        int64  `mapstructure:"seed"`
}

// LoadConfig loads the configuration with viper.
// Priority order: environment variables (WOF_ prefix) > config file
// (wheel-of-fortune.yaml in the working directory, optional) > defaults.
func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetConfigName("wheel-of-fortune")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("WOF")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("wheel_file", "")
	v.SetDefault("phrases_file", "")
	v.SetDefault("seed", 0)

	// The config file is optional; env vars and defaults cover everything.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	return cfg, nil
}
