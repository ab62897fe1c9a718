package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the application's configuration.
type Config struct {
	Server struct {
		Port string `yaml:"port"`
		Mode string `yaml:"mode"`
	} `yaml:"server"`
	Providers struct {
		GroqKey string `yaml:"groq_key"`
		XAIKey  string `yaml:"xai_key"`
		KRKRKey string `yaml:"krkr_key"`
	} `yaml:"providers"`
	RateLimit struct {
		Enabled           bool `yaml:"enabled"`
		RequestsPerMinute int  `yaml:"requests_per_minute"`
	} `yaml:"rate_limit"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	Static struct {
		Dir string `yaml:"dir"`
	} `yaml:"static"`
}

// LoadConfig reads configuration from the specified YAML file. A missing
// file is not an error: the platform runs with defaults plus environment
// variables, so a zero-setup start works.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	file, err := os.Open(configPath)
	if err == nil {
		defer file.Close()
		decoder := yaml.NewDecoder(file)
		if err := decoder.Decode(config); err != nil {
			return nil, fmt.Errorf("failed to decode config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}

	config.applyDefaults()

	// Secrets may be given as ${VAR} references in the file or directly in
	// the environment; the environment wins.
	config.Providers.GroqKey = envOr("GROQ_KEY", os.ExpandEnv(config.Providers.GroqKey))
	config.Providers.XAIKey = envOr("XAI_KEY", os.ExpandEnv(config.Providers.XAIKey))
	config.Providers.KRKRKey = envOr("KRKR_KEY", os.ExpandEnv(config.Providers.KRKRKey))

	if port := os.Getenv("PORT"); port != "" {
		config.Server.Port = port
	}

	return config, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = "5000"
	}
	if c.Server.Mode == "" {
		c.Server.Mode = "debug"
	}
	if c.RateLimit.RequestsPerMinute == 0 {
		c.RateLimit.RequestsPerMinute = 60
	}
	if c.Redis.Addr == "" {
		c.Redis.Addr = "localhost:6379"
	}
	if c.Static.Dir == "" {
		c.Static.Dir = "./public"
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
