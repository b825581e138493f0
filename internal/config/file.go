package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// AppConfig holds process-level options loaded from an optional YAML file.
// Timer durations and colors are not here; those live in the database so
// the settings panel can edit them at runtime.
type AppConfig struct {
	DataDir string `yaml:"data_dir"`
	Theme   string `yaml:"theme"`
}

// LoadFile reads the app config at path. A missing file is not an error;
// defaults are returned instead.
func LoadFile(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultAppConfig(), nil
		}
		return nil, err
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if cfg.Theme == "" {
		cfg.Theme = "default"
	}
	return &cfg, nil
}

func defaultAppConfig() *AppConfig {
	return &AppConfig{Theme: "default"}
}
