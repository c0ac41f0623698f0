// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"
	"strings"

	"github.com/agriprofit/transport-compare/pkg/constants"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for transport-compare.
type Configuration struct {
	Settings Settings
	Upstream UpstreamConfig `yaml:"upstream,omitempty"`
	Server   ServerConfig   `yaml:"server,omitempty"`
	Logging  LoggingConfig  `yaml:"logging,omitempty"`
	Output   OutputConfig   `yaml:"output,omitempty"`
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
}

// UpstreamConfig points at the backend mandi comparison API. An empty BaseURL
// means candidates are synthesized locally.
type UpstreamConfig struct {
	BaseURL        string `yaml:"baseUrl,omitempty"`
	TimeoutSeconds int    `yaml:"timeoutSeconds,omitempty"`
}

// ServerConfig holds runtime parameters for the HTTP daemon.
type ServerConfig struct {
	Address string `yaml:"address,omitempty"`
}

// FreightRates holds the per-km freight rate in rupees for each vehicle class.
type FreightRates struct {
	TataAce    float64
	MiniTruck  float64
	LCV        float64
	Truck      float64
	TenWheeler float64
	MultiAxle  float64
}

// Capacities holds the load capacity in metric tons for each vehicle class.
// The values form the selection ladder and remain overridable.
type Capacities struct {
	TataAce    float64
	MiniTruck  float64
	LCV        float64
	Truck      float64
	TenWheeler float64
	MultiAxle  float64
}

// TollRates holds the per-plaza toll in rupees by vehicle weight class.
type TollRates struct {
	Light  float64
	Medium float64
	Heavy  float64
}

// Settings is the user-editable cost model configuration.
type Settings struct {
	FreightRates        FreightRates
	Capacities          Capacities
	LoadingPerQuintal   float64
	LoadingPerTrip      float64
	UnloadingPerQuintal float64
	UnloadingPerTrip    float64
	TollPerPlaza        TollRates
	TollPlazaSpacingKm  float64
	Weighbridge         float64
	Parking             float64
	Misc                float64

	// TollDensityOverrides replaces the built-in per-state toll density
	// factors where set. Keys are state names.
	TollDensityOverrides map[string]float64
}

// DefaultSettings returns the built-in cost model defaults.
func DefaultSettings() Settings {
	return Settings{
		FreightRates: FreightRates{
			TataAce:    25,
			MiniTruck:  35,
			LCV:        45,
			Truck:      55,
			TenWheeler: 70,
			MultiAxle:  85,
		},
		Capacities: Capacities{
			TataAce:    0.75,
			MiniTruck:  2,
			LCV:        7,
			Truck:      12,
			TenWheeler: 20,
			MultiAxle:  40,
		},
		LoadingPerQuintal:   15,
		LoadingPerTrip:      300,
		UnloadingPerQuintal: 15,
		UnloadingPerTrip:    250,
		TollPerPlaza: TollRates{
			Light:  60,
			Medium: 120,
			Heavy:  235,
		},
		TollPlazaSpacingKm: constants.DefaultTollPlazaSpacingKm,
		Weighbridge:        100,
		Parking:            150,
		Misc:               200,
	}
}

// DefaultConfiguration returns a configuration with default settings and
// empty ambient sections.
func DefaultConfiguration() *Configuration {
	return &Configuration{
		Settings: DefaultSettings(),
		Upstream: UpstreamConfig{TimeoutSeconds: constants.DefaultUpstreamTimeoutSeconds},
		Server:   ServerConfig{Address: constants.DefaultServerAddress},
	}
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there, merged over the defaults. An empty path returns the
// defaults without error.
func LoadConfiguration(configPath string) (*Configuration, error) {
	configuration := DefaultConfiguration()
	if configPath == "" {
		return configuration, nil
	}

	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	err := viper.Unmarshal(configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.normalize()
	return configuration, nil
}

func (c *Configuration) normalize() {
	if c.Settings.TollPlazaSpacingKm <= 0 {
		c.Settings.TollPlazaSpacingKm = constants.DefaultTollPlazaSpacingKm
	}
	if c.Upstream.TimeoutSeconds <= 0 {
		c.Upstream.TimeoutSeconds = constants.DefaultUpstreamTimeoutSeconds
	}
	if c.Server.Address == "" {
		c.Server.Address = constants.DefaultServerAddress
	}
}

// Clone returns an independent copy of the settings so a calculation pass
// never observes concurrent edits.
func (s Settings) Clone() Settings {
	clone := s
	if s.TollDensityOverrides != nil {
		clone.TollDensityOverrides = make(map[string]float64, len(s.TollDensityOverrides))
		for state, factor := range s.TollDensityOverrides {
			clone.TollDensityOverrides[state] = factor
		}
	}
	return clone
}

// TollDensityOverride returns the configured override factor for a state, if
// any. The lookup is case-insensitive because viper lowercases map keys.
func (s *Settings) TollDensityOverride(state string) (float64, bool) {
	for name, factor := range s.TollDensityOverrides {
		if strings.EqualFold(name, state) {
			return factor, true
		}
	}
	return 0, false
}

// ValidateConfiguration performs general validation of the cost settings and
// returns warnings.
func (c *Configuration) ValidateConfiguration() []string {
	return c.Settings.Validate()
}

// Validate checks the cost settings for suspicious values and returns
// warnings. Settings that trigger warnings are still usable.
func (s Settings) Validate() []string {
	var warnings []string

	rates := []struct {
		name  string
		value float64
	}{
		{"freightRates.tataAce", s.FreightRates.TataAce},
		{"freightRates.miniTruck", s.FreightRates.MiniTruck},
		{"freightRates.lcv", s.FreightRates.LCV},
		{"freightRates.truck", s.FreightRates.Truck},
		{"freightRates.tenWheeler", s.FreightRates.TenWheeler},
		{"freightRates.multiAxle", s.FreightRates.MultiAxle},
		{"loadingPerQuintal", s.LoadingPerQuintal},
		{"loadingPerTrip", s.LoadingPerTrip},
		{"unloadingPerQuintal", s.UnloadingPerQuintal},
		{"unloadingPerTrip", s.UnloadingPerTrip},
		{"tollPerPlaza.light", s.TollPerPlaza.Light},
		{"tollPerPlaza.medium", s.TollPerPlaza.Medium},
		{"tollPerPlaza.heavy", s.TollPerPlaza.Heavy},
		{"weighbridge", s.Weighbridge},
		{"parking", s.Parking},
		{"misc", s.Misc},
	}
	for _, rate := range rates {
		if rate.value < 0 {
			warnings = append(warnings, fmt.Sprintf("Rate '%s' is negative (%.2f)", rate.name, rate.value))
		}
	}

	capacities := []struct {
		name  string
		value float64
	}{
		{"capacities.tataAce", s.Capacities.TataAce},
		{"capacities.miniTruck", s.Capacities.MiniTruck},
		{"capacities.lcv", s.Capacities.LCV},
		{"capacities.truck", s.Capacities.Truck},
		{"capacities.tenWheeler", s.Capacities.TenWheeler},
		{"capacities.multiAxle", s.Capacities.MultiAxle},
	}
	previous := 0.0
	for _, capacity := range capacities {
		if capacity.value <= 0 {
			warnings = append(warnings, fmt.Sprintf("Capacity '%s' must be positive (%.2f)", capacity.name, capacity.value))
		} else if capacity.value <= previous {
			warnings = append(warnings, fmt.Sprintf("Capacity '%s' (%.2ft) does not exceed the next smaller class (%.2ft)", capacity.name, capacity.value, previous))
		}
		previous = capacity.value
	}

	for state, factor := range s.TollDensityOverrides {
		if factor < 0 {
			warnings = append(warnings, fmt.Sprintf("Toll density override for '%s' is negative (%.2f)", state, factor))
		}
	}

	return warnings
}
