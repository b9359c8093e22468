// Package config loads application configuration from an optional YAML file
// with environment-variable overrides.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds everything the binaries need to run.
type Config struct {
	// ProjectID is the GCP project holding the hierarchy dataset.
	ProjectID string `yaml:"project_id"`

	// Dataset is the BigQuery dataset with the reference tables.
	Dataset string `yaml:"dataset"`

	// Bucket receives batch report artifacts. Empty disables uploads.
	Bucket string `yaml:"bucket"`

	// TemplatesDir holds the YAML card templates. Empty means use the
	// built-in default template only.
	TemplatesDir string `yaml:"templates_dir"`

	// ListenAddr is the HTTP API bind address.
	ListenAddr string `yaml:"listen_addr"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Dataset:      "pix",
		TemplatesDir: "templates",
		ListenAddr:   ":8080",
	}
}

// Load reads a YAML config file and applies environment overrides. A missing
// file is not an error; defaults plus environment apply.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return cfg, fmt.Errorf("Load: reading %q: %w", path, err)
			}
		} else if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("Load: parsing %q: %w", path, err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PIXCARDS_PROJECT"); v != "" {
		cfg.ProjectID = v
	}
	if v := os.Getenv("PIXCARDS_DATASET"); v != "" {
		cfg.Dataset = v
	}
	if v := os.Getenv("PIXCARDS_BUCKET"); v != "" {
		cfg.Bucket = v
	}
	if v := os.Getenv("PIXCARDS_TEMPLATES_DIR"); v != "" {
		cfg.TemplatesDir = v
	}
	if v := os.Getenv("PIXCARDS_LISTEN_ADDR"); v != "" {
		cfg.ListenAddr = v
	}
}
