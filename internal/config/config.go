// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"hospital-billing/core/money"
	"hospital-billing/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Hospital contains hospital identity settings
	Hospital HospitalConfig `json:"hospital"`

	// Billing contains billing-related settings
	Billing BillingConfig `json:"billing"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// HospitalConfig contains hospital identity settings
type HospitalConfig struct {
	// Name is shown in the session banner and bill header
	Name string `json:"name"`

	// StartingPatientID is the first patient ID assigned in a session
	StartingPatientID int `json:"starting_patient_id"`
}

// BillingConfig contains billing-related settings
type BillingConfig struct {
	// Currency is the billing currency
	Currency money.Currency `json:"currency"`

	// SchemeFile is an optional HCL file defining billing schemes
	SchemeFile string `json:"scheme_file,omitempty"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// NoColor disables ANSI colors in terminal output
	NoColor bool `json:"no_color"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Hospital: HospitalConfig{
			Name:              "City General Hospital",
			StartingPatientID: 5001,
		},
		Billing: BillingConfig{
			Currency: money.CurrencyUSD,
		},
		Output:  OutputConfig{},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file, layering .env and HOSPITAL_*
// environment overrides on top.
func Load(path string) (*Config, error) {
	config := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	} else if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	config.applyEnv()
	return config, nil
}

// applyEnv layers HOSPITAL_* environment variables over the config.
// A .env file in the working directory is honored if present.
func (c *Config) applyEnv() {
	_ = godotenv.Load()

	if v := os.Getenv("HOSPITAL_NAME"); v != "" {
		c.Hospital.Name = v
	}
	if v := os.Getenv("HOSPITAL_STARTING_PATIENT_ID"); v != "" {
		if id, err := strconv.Atoi(v); err == nil {
			c.Hospital.StartingPatientID = id
		}
	}
	if v := os.Getenv("HOSPITAL_CURRENCY"); v != "" {
		c.Billing.Currency = money.Currency(v)
	}
	if v := os.Getenv("HOSPITAL_SCHEME_FILE"); v != "" {
		c.Billing.SchemeFile = v
	}
	if v := os.Getenv("HOSPITAL_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("HOSPITAL_NO_COLOR"); v != "" {
		if noColor, err := strconv.ParseBool(v); err == nil {
			c.Output.NoColor = noColor
		}
	}
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
