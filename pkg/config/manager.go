package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Manager implements ConfigManager for the solver configurations.
// Values are layered: defaults, then the JSON file, then the environment.
type Manager struct {
	validator Validator
}

// NewManager creates a new configuration manager
func NewManager() *Manager {
	return &Manager{
		validator: NewSolverValidator(),
	}
}

// LoadKnapsackConfig loads a knapsack configuration
func (m *Manager) LoadKnapsackConfig(configFile string) (*KnapsackConfig, error) {
	cfg := NewDefaultKnapsackConfig()

	if configFile != "" {
		if err := m.loadFromFile(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := ApplyKnapsackEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := m.ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// LoadTSPConfig loads a TSP configuration
func (m *Manager) LoadTSPConfig(configFile string) (*TSPConfig, error) {
	cfg := NewDefaultTSPConfig()

	if configFile != "" {
		if err := m.loadFromFile(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := ApplyTSPEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := m.ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadFromFile decodes a JSON file over cfg, so absent keys keep their defaults
func (m *Manager) loadFromFile(configFile string, cfg Config) error {
	data, err := os.ReadFile(configFile)
	if err != nil {
		return fmt.Errorf("could not read config file: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("could not parse config file: %w", err)
	}

	return nil
}

// ValidateConfig validates a configuration using the validator
func (m *Manager) ValidateConfig(cfg Config) error {
	return m.validator.Validate(cfg)
}

// SaveConfig saves configuration to file as indented JSON
func (m *Manager) SaveConfig(cfg Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Ensure directory exists
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	return os.WriteFile(path, data, 0644)
}
