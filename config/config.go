package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	Gemini struct {
		ApiKey string `yaml:"apiKey"`
		Model  string `yaml:"model"`
	} `yaml:"gemini"`

	Database struct {
		URI            string `yaml:"uri"`
		SeedSampleData bool   `yaml:"seedSampleData"`
	} `yaml:"database"`

	Sheets struct {
		SpreadsheetId   string `yaml:"spreadsheetId"`
		CredentialsFile string `yaml:"credentialsFile"`
	} `yaml:"sheets"`

	Organizer struct {
		AccessToken string `yaml:"accessToken"`
	} `yaml:"organizer"`

	Upload struct {
		MaxSizeMB int64 `yaml:"maxSizeMB"`
	} `yaml:"upload"`

	Evaluator struct {
		TimeoutSeconds int `yaml:"timeoutSeconds"`
	} `yaml:"evaluator"`
}

// LoadConfig reads the configuration file and fills in defaults
// for values the file leaves unset.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Gemini.Model == "" {
		cfg.Gemini.Model = "gemini-2.5-flash"
	}
	if cfg.Upload.MaxSizeMB == 0 {
		cfg.Upload.MaxSizeMB = 10
	}
	if cfg.Evaluator.TimeoutSeconds == 0 {
		cfg.Evaluator.TimeoutSeconds = 60
	}

	return &cfg, nil
}
