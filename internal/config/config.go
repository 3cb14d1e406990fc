package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port        string   `yaml:"port"`
		CORSOrigins []string `yaml:"corsOrigins"`
	} `yaml:"server"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		TTL      string `yaml:"ttl"`
	} `yaml:"redis"`
	Postgres struct {
		URL string `yaml:"url"`
	} `yaml:"postgres"`
	Quiz struct {
		TTL string `yaml:"ttl"`
	} `yaml:"quiz"`
	AI struct {
		APIKey               string `yaml:"apiKey"`
		Model                string `yaml:"model"`
		Timeout              string `yaml:"timeout"`
		FetchTimeout         string `yaml:"fetchTimeout"`
		MaxFetchBytes        int64  `yaml:"maxFetchBytes"`
		MaxImageDimension    int    `yaml:"maxImageDimension"`
		OptimizeConcurrency  int    `yaml:"optimizeConcurrency"`
		// AllowPrivateNetworks lets URL generation fetch internal addresses.
		AllowPrivateNetworks bool   `yaml:"allowPrivateNetworks"`
	} `yaml:"ai"`
}

// DefaultModel is used when ai.model is not configured.
const DefaultModel = "gemini-2.0-flash"

// Load reads YAML config from path. GEMINI_API_KEY overrides ai.apiKey.
func Load(path string) (Config, error) {
	cfg := Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		cfg.AI.APIKey = key
	}
	if cfg.AI.Model == "" {
		cfg.AI.Model = DefaultModel
	}
}

// TTLDuration parses a duration string or returns the fallback if empty.
func TTLDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}
