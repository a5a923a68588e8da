// Package config provides configuration loading for the CLI. Values come
// from the environment, with an optional .env file loaded first.
package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvGeminiAPIKey = "GEMINI_API_KEY"
	EnvPDFCoAPIKey  = "PDFCO_API_KEY"
	EnvDataDir      = "CVSTUDIO_DATA_DIR"
)

// Config holds the runtime configuration.
type Config struct {
	// GeminiAPIKey authenticates AI analysis calls. Review and match
	// commands fail without it.
	GeminiAPIKey string `json:"gemini_api_key,omitempty"`

	// PDFCoAPIKey authenticates the PDF conversion service. PDF uploads
	// fail without it; other formats are unaffected.
	PDFCoAPIKey string `json:"pdfco_api_key,omitempty"`

	// DataDir is where document partitions are stored. Defaults to
	// ~/.cvstudio.
	DataDir string `json:"data_dir,omitempty"`
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first if present; real environment variables win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: failed to load .env file: %v", err)
	}

	cfg := &Config{
		GeminiAPIKey: os.Getenv(EnvGeminiAPIKey),
		PDFCoAPIKey:  os.Getenv(EnvPDFCoAPIKey),
		DataDir:      os.Getenv(EnvDataDir),
	}

	if cfg.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		cfg.DataDir = filepath.Join(home, ".cvstudio")
	}

	if cfg.GeminiAPIKey == "" {
		log.Printf("warning: %s is not set, AI analysis is disabled", EnvGeminiAPIKey)
	}
	if cfg.PDFCoAPIKey == "" {
		log.Printf("warning: %s is not set, PDF extraction is disabled", EnvPDFCoAPIKey)
	}

	return cfg, nil
}

// LoadFile loads configuration from a JSON file, for callers that prefer a
// config file over environment variables.
func LoadFile(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	return &cfg, nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c
	if result.GeminiAPIKey == "" {
		result.GeminiAPIKey = defaults.GeminiAPIKey
	}
	if result.PDFCoAPIKey == "" {
		result.PDFCoAPIKey = defaults.PDFCoAPIKey
	}
	if result.DataDir == "" {
		result.DataDir = defaults.DataDir
	}
	return result
}
