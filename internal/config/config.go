// Package config defines the data structures related to configuration and
// includes functions for loading, normalizing, and validating the config.
package config

import (
	"fmt"
	"io"

	"github.com/brixaurea/land-schedule/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for land-schedule.
type Configuration struct {
	Deals   []Deal
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv

	// DiscountRatePercent is the annual rate used for present-value metrics.
	DiscountRatePercent float64 `yaml:"discountRatePercent,omitempty"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yml")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	return unmarshalConfiguration(v)
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from an
// in-memory reader, e.g. an HTTP upload.
func LoadConfigurationFromReader(reader io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(reader); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	return unmarshalConfiguration(v)
}

func unmarshalConfiguration(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.Normalize()
	return &configuration, nil
}

// Normalize fills in derived values and defaults for every deal.
func (c *Configuration) Normalize() {
	for i := range c.Deals {
		c.Deals[i].normalize()
	}
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. Warnings never block schedule computation.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if len(c.Deals) == 0 {
		warnings = append(warnings, "Configuration contains no deals")
	}

	for _, deal := range c.Deals {
		warnings = append(warnings, validation.ValidateDeal(deal.validationInfo())...)
	}

	return warnings
}
