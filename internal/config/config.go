// Package config loads the per-service reduction settings consumed by the
// prune command.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// ServiceReduction describes what to keep for one named service.
//
// Services are declared as a list rather than a name-keyed map because viper
// lower-cases map keys and service names are case-sensitive.
type ServiceReduction struct {
	Name           string   `mapstructure:"name" validate:"required"`
	KeepOperations []string `mapstructure:"keep_operations" validate:"required,min=1,dive,required"`
	PolicyFile     string   `mapstructure:"policy_file"`
}

// Config is the decoded configuration file.
type Config struct {
	Services []ServiceReduction `mapstructure:"services" validate:"required,min=1,dive"`
}

// LoadConfig configures viper's search path and defaults. Flag-driven config
// files are handled by the root command; this covers the working-directory
// fallback.
func LoadConfig() {
	viper.SetConfigName("wsdltrim")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Debug().Msg("No config file found in working directory")
		} else {
			log.Panic().Err(err).Msg("Fatal error reading config file")
		}
	}
	SetDefaultConfig()
}

// SetDefaultConfig registers defaults for everything not supplied by the
// config file.
func SetDefaultConfig() {
	viper.SetDefault("output.indent", "  ")
}

// Load decodes and validates the full configuration.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

// ServiceByName returns the reduction settings for the named service. A
// missing service is a configuration error carrying the requested name.
func (c *Config) ServiceByName(name string) (*ServiceReduction, error) {
	for i := range c.Services {
		if c.Services[i].Name == name {
			return &c.Services[i], nil
		}
	}
	return nil, fmt.Errorf("service %q not found in configuration", name)
}
