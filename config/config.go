package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Port           string `mapstructure:"port"`
	AIProvider     string `mapstructure:"ai_provider"` // "openai" (default) or "gemini"
	AIEndpoint     string `mapstructure:"ai_endpoint"`
	Model          string `mapstructure:"model"`
	EmbeddingModel string `mapstructure:"embedding_model"`
	TopK           int    `mapstructure:"top_k"`
	Database       string `mapstructure:"database"`
	OpenAIAPIKey   string `mapstructure:"OPENAI_API_KEY"`
	GeminiAPIKeys  string `mapstructure:"GEMINI_API_KEYS"` // comma separated, rotated on failure
}

func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Secrets come from the environment, never from the config file
	v.BindEnv("OPENAI_API_KEY")
	v.BindEnv("GEMINI_API_KEYS")

	v.SetDefault("port", "8080")
	v.SetDefault("ai_provider", "openai")
	v.SetDefault("database", "nextute")
	v.SetDefault("top_k", 3)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}
