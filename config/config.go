// Package config loads runtime settings from the environment and an
// optional harx.yml file.
package config

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config holds every runtime setting.
type Config struct {
	Port           int           `mapstructure:"port"`
	AllowedOrigins []string      `mapstructure:"allowed_origins"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	OpenAI         OpenAI        `mapstructure:"openai"`
}

// OpenAI configures the selection model client.
type OpenAI struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
}

// Load reads harx.yml (if present, searched in configPath then the
// working directory) and HARX_-prefixed environment variables.
// Environment variables win over the file; HARX_OPENAI_API_KEY maps to
// openai.api_key.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("harx")
	v.SetConfigType("yml")
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix("HARX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", 8000)
	v.SetDefault("allowed_origins", []string{"http://localhost:3000", "http://localhost:3001"})
	v.SetDefault("request_timeout", 30*time.Second)
	v.SetDefault("openai.api_key", "")
	v.SetDefault("openai.model", "gpt-4o-2024-08-06")
	v.SetDefault("openai.base_url", "https://api.openai.com/v1")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}
	return &cfg, nil
}
