package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

// TemplateOverlay defines a recurring shift pattern applied on top of the
// stored templates when auditing, e.g. a trial roster change being costed
// before it is committed.
type TemplateOverlay struct {
	ID           string `yaml:"id" validate:"required"`
	StaffID      string `yaml:"staffID" validate:"required"`
	CentreID     string `yaml:"centreID" validate:"required"`
	RoomID       string `yaml:"roomID" validate:"required"`
	StartTime    string `yaml:"startTime" validate:"required"`
	EndTime      string `yaml:"endTime" validate:"required"`
	BreakMinutes int    `yaml:"breakMinutes,omitempty" validate:"min=0"`
	RRule        string `yaml:"rrule" validate:"required"`
}

// Logging controls console verbosity and where the JSON log files land.
type Logging struct {
	Level string `yaml:"level,omitempty" validate:"omitempty,oneof=debug info warn error"`
	Dir   string `yaml:"dir,omitempty"`
}

// Config represents the application configuration.
type Config struct {
	DatabaseURL string `yaml:"databaseURL" validate:"required"`

	// HTTPAddr is the listen address of the query API server.
	HTTPAddr string `yaml:"httpAddr,omitempty"`

	// DefaultWeeklyBudget is used when a centre has no budget configured.
	DefaultWeeklyBudget float64 `yaml:"defaultWeeklyBudget,omitempty" validate:"min=0"`

	Logging Logging `yaml:"logging,omitempty"`

	TemplateOverlays []TemplateOverlay `yaml:"templateOverlays,omitempty" validate:"dive"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from roster_engine.yaml.
// It looks for the config file in the current directory first, then in the
// user's home directory.
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":8080"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Dir == "" {
		cfg.Logging.Dir = "logs"
	}

	return &cfg, nil
}

// Validate validates the configuration struct and checks rrule syntax.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	for i, overlay := range cfg.TemplateOverlays {
		if _, err := rrule.StrToRRule(overlay.RRule); err != nil {
			return fmt.Errorf("invalid rrule in templateOverlays[%d]: %w", i, err)
		}
	}

	return nil
}

// findConfigFile searches for roster_engine.yaml in current directory and home directory.
func findConfigFile() (string, error) {
	configFileName := "roster_engine.yaml"

	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
