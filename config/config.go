// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// PCRConfig is settings for the PCR simulator
type PCRConfig struct {
	// the minimum primer annealing-core length
	MinAnnealLen int `mapstructure:"min-anneal-len"`
}

// LigationConfig is settings for the circularization search
type LigationConfig struct {
	// the maximum number of input fragments the search accepts
	MaxFragments int `mapstructure:"max-fragments"`

	// how long the search may run before it is cancelled
	Timeout time.Duration `mapstructure:"timeout"`
}

// Config is the root-level settings struct, a mix of settings from the
// optional config file and command line arguments
type Config struct {
	// path to a YAML file of user-defined enzyme specs merged over the
	// built-in table
	EnzymeFile string `mapstructure:"enzyme-file"`

	// PCR settings
	PCR PCRConfig `mapstructure:"pcr"`

	// Ligation settings
	Ligation LigationConfig `mapstructure:"ligation"`
}

// SetDefaults registers the default settings with viper. Called before any
// config file or flags are read.
func SetDefaults() {
	viper.SetDefault("pcr.min-anneal-len", 15)
	viper.SetDefault("ligation.max-fragments", 8)
	viper.SetDefault("ligation.timeout", 30*time.Second)
}

// New returns a Config populated by viper from the config file, environment
// and command line flags.
func New() (*Config, error) {
	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to decode settings: %w", err)
	}
	return &c, nil
}
