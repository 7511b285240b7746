package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Names of the provider credentials. They are never copied into Config;
// Lookup reads them on every request so a missing key is reported per call.
const (
	OpenAIKeyVar = "OPENAI_API_KEY"
	GeminiKeyVar = "GEMINI_API_KEY"
)

// Config holds all configuration for the application.
// Mapstructure tags are used to map environment variables and config file keys.
type Config struct {
	// Server Configuration
	ServerAddress string `mapstructure:"SERVER_ADDRESS"` // e.g., ":8080"
	AppEnv        string `mapstructure:"APP_ENV"`        // "production" switches gin to release mode

	// AI Configuration
	Provider      string        `mapstructure:"AI_PROVIDER"`      // "openai" or "gemini" (copy generation only)
	OpenAIBaseURL string        `mapstructure:"OPENAI_BASE_URL"`  // empty means the public OpenAI endpoint
	CopyModel     string        `mapstructure:"COPY_MODEL"`       // e.g., "gpt-4.1-mini"
	ImageModel    string        `mapstructure:"IMAGE_MODEL"`      // e.g., "dall-e-3"
	ImageSize     string        `mapstructure:"IMAGE_SIZE"`       // e.g., "1024x1024"
	GeminiModel   string        `mapstructure:"GEMINI_MODEL"`     // e.g., "gemini-2.5-flash"
	UpstreamLimit time.Duration `mapstructure:"UPSTREAM_TIMEOUT"` // upper bound for one provider call
	HTTPTimeout   time.Duration `mapstructure:"HTTP_TIMEOUT"`     // timeout of the shared provider HTTP client
	PreferIPv4    bool          `mapstructure:"PREFER_IPV4"`      // dial providers over IPv4 only
	StrictSchema  bool          `mapstructure:"COPY_SCHEMA_STRICT"` // reject copy that does not match the landing page schema

	// Studio UI
	SessionTTL time.Duration `mapstructure:"SESSION_TTL"` // idle studio sessions are dropped after this
}

func setDefaults() {
	viper.SetDefault("SERVER_ADDRESS", ":8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("AI_PROVIDER", "openai")
	viper.SetDefault("OPENAI_BASE_URL", "")
	viper.SetDefault("COPY_MODEL", "gpt-4.1-mini")
	viper.SetDefault("IMAGE_MODEL", "dall-e-3")
	viper.SetDefault("IMAGE_SIZE", "1024x1024")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	viper.SetDefault("UPSTREAM_TIMEOUT", "90s")
	viper.SetDefault("HTTP_TIMEOUT", "120s")
	viper.SetDefault("PREFER_IPV4", false)
	viper.SetDefault("COPY_SCHEMA_STRICT", false)
	viper.SetDefault("SESSION_TTL", "30m")
}

// LoadConfig reads configuration from file and environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)     // Path to look for the config file in
	viper.SetConfigName("config") // Name of config file (without extension)
	viper.SetConfigType("yaml")

	setDefaults()
	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Config file ('config.yaml') not found in specified path, relying solely on environment variables.")
		} else {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Printf("Using configuration file: %s", viper.ConfigFileUsed())
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return Config{}, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Provider = strings.ToLower(strings.TrimSpace(config.Provider))
	switch config.Provider {
	case "openai", "gemini":
	default:
		return Config{}, fmt.Errorf("unsupported AI_PROVIDER %q (want openai or gemini)", config.Provider)
	}

	if config.UpstreamLimit <= 0 {
		config.UpstreamLimit = 90 * time.Second
	}
	if config.HTTPTimeout <= 0 {
		config.HTTPTimeout = 120 * time.Second
	}
	if config.SessionTTL <= 0 {
		config.SessionTTL = 30 * time.Minute
	}

	// Secrets are only checked per request; at startup a missing key is a warning.
	if Lookup(OpenAIKeyVar) == "" {
		log.Printf("WARN: %s is not set. /api/generate and /api/hero-image will answer 500 until it is.", OpenAIKeyVar)
	}

	return
}

// Lookup returns the current value of a secret from the environment or the
// config file. It is evaluated on every call.
func Lookup(key string) string {
	return strings.TrimSpace(viper.GetString(key))
}

// CredentialVar returns the name of the secret used for copy generation
// with the configured provider.
func (c Config) CredentialVar() string {
	if c.Provider == "gemini" {
		return GeminiKeyVar
	}
	return OpenAIKeyVar
}
