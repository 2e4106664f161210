package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds runtime parameters for the server.
// Zero values mean "unspecified" and are replaced by defaults (or flag
// values) in main.
type Config struct {
	Host        string  `json:"host" yaml:"host" toml:"host"`
	Port        int     `json:"port" yaml:"port" toml:"port"`
	ModelsDir   string  `json:"models_dir" yaml:"models_dir" toml:"models_dir"`
	Temperature float64 `json:"temperature" yaml:"temperature" toml:"temperature"`
	MaxLength   int     `json:"max_length" yaml:"max_length" toml:"max_length"`
	Debug       bool    `json:"debug" yaml:"debug" toml:"debug"`

	// MaxBodyBytes caps JSON request bodies; zero keeps the 1 MiB default.
	MaxBodyBytes int64 `json:"max_body_bytes" yaml:"max_body_bytes" toml:"max_body_bytes"`

	// Backend tuning.
	CtxSize   int `json:"ctx_size" yaml:"ctx_size" toml:"ctx_size"`
	Threads   int `json:"threads" yaml:"threads" toml:"threads"`
	GPULayers int `json:"gpu_layers" yaml:"gpu_layers" toml:"gpu_layers"`

	// CORS is opt-in; empty origins leave the middleware disabled.
	CORSOrigins []string `json:"cors_origins" yaml:"cors_origins" toml:"cors_origins"`
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}
