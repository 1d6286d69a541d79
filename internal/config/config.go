// internal/config/config.go
package config

import (
	"fmt"
	"os"
)

// Providers understood by the AI client switch in cmd wiring.
const (
	ProviderBedrock = "bedrock"
	ProviderOpenAI  = "openai"
	ProviderMock    = "mock"
)

// Config holds everything the service reads from the environment.
type Config struct {
	Port string

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string

	DynamoTable string
	S3Bucket    string
	S3KeyPrefix string

	TextProvider  string
	TextModel     string
	ImageProvider string
	ImageModel    string

	GuardrailID      string
	GuardrailVersion string

	OpenAIAPIKey  string
	OpenAIBaseURL string

	PlaceholderImageURL string
	LogLevel            string
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads the configuration from the environment, applying defaults.
func Load() *Config {
	return &Config{
		Port: getenv("PORT", "8080"),

		AWSRegion:          getenv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),

		DynamoTable: getenv("DYNAMODB_TABLE", "prachar-ai-campaigns"),
		S3Bucket:    getenv("S3_BUCKET", "prachar-ai-assets"),
		S3KeyPrefix: getenv("S3_KEY_PREFIX", "campaigns/"),

		TextProvider:  getenv("TEXT_PROVIDER", ProviderBedrock),
		TextModel:     getenv("TEXT_MODEL", "anthropic.claude-3-5-sonnet-20240620-v1:0"),
		ImageProvider: getenv("IMAGE_PROVIDER", ProviderBedrock),
		ImageModel:    getenv("IMAGE_MODEL", "amazon.titan-image-generator-v1"),

		GuardrailID:      os.Getenv("GUARDRAIL_ID"),
		GuardrailVersion: getenv("GUARDRAIL_VERSION", "DRAFT"),

		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),

		PlaceholderImageURL: getenv("PLACEHOLDER_IMAGE_URL", "https://via.placeholder.com/1024x1024.png?text=Campaign+Poster"),
		LogLevel:            getenv("LOG_LEVEL", "info"),
	}
}

// Validate checks the parts of the config the service cannot run without.
func (c *Config) Validate() error {
	if c.DynamoTable == "" {
		return fmt.Errorf("DYNAMODB_TABLE must not be empty")
	}
	if c.S3Bucket == "" {
		return fmt.Errorf("S3_BUCKET must not be empty")
	}

	switch c.TextProvider {
	case ProviderBedrock, ProviderOpenAI, ProviderMock:
	default:
		return fmt.Errorf("unknown text provider: %s", c.TextProvider)
	}
	switch c.ImageProvider {
	case ProviderBedrock, ProviderOpenAI, ProviderMock:
	default:
		return fmt.Errorf("unknown image provider: %s", c.ImageProvider)
	}

	if (c.TextProvider == ProviderOpenAI || c.ImageProvider == ProviderOpenAI) && c.OpenAIAPIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required when an openai provider is selected")
	}
	return nil
}
