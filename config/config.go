package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config is built once at process start and handed to every constructor.
// Request handlers never read configuration on their own.
type Config struct {
	Port             string           `mapstructure:"port"`
	StorageConfig    StorageConfig    `mapstructure:"storage"`
	ExtractionConfig ExtractionConfig `mapstructure:"extraction"`
	AIConfig         AIConfig         `mapstructure:"ai"`
	SearchConfig     SearchConfig     `mapstructure:"search"`
	MongoURI         string           `mapstructure:"MONGODB_URI"`
}

// StorageConfig configures the object store holding raw uploads.
type StorageConfig struct {
	ProjectID string `mapstructure:"project_id"`
	Bucket    string `mapstructure:"bucket"`
}

// ExtractionConfig points at the document analysis backend.
type ExtractionConfig struct {
	Endpoint string `mapstructure:"endpoint"`
	APIKey   string `mapstructure:"EXTRACTION_API_KEY"`
}

// AIConfig selects and configures the summarization backend.
// Provider is "openai" (default) or "gemini".
type AIConfig struct {
	Provider     string `mapstructure:"provider"`
	Endpoint     string `mapstructure:"endpoint"`
	Model        string `mapstructure:"model"`
	OpenAIAPIKey string `mapstructure:"OPENAI_API_KEY"`
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`
}

// SearchConfig points at the Weaviate search index.
type SearchConfig struct {
	Host      string `mapstructure:"host"`
	APIKey    string `mapstructure:"WEAVIATE_APIKEY"`
	ClassName string `mapstructure:"class_name"`
}

func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Bind secrets from environment variables
	v.BindEnv("extraction.EXTRACTION_API_KEY", "EXTRACTION_API_KEY")
	v.BindEnv("ai.OPENAI_API_KEY", "OPENAI_API_KEY")
	v.BindEnv("ai.GEMINI_API_KEY", "GEMINI_API_KEY")
	v.BindEnv("search.WEAVIATE_APIKEY", "WEAVIATE_APIKEY")
	v.BindEnv("MONGODB_URI")

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if config.AIConfig.Provider == "" {
		config.AIConfig.Provider = "openai"
	}

	return &config, nil
}
