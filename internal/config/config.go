package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	CORS      CORSConfig
	Auth      AuthConfig
	Extractor ExtractorConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	Environment     string        `mapstructure:"environment"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// AuthConfig holds the optional static bearer token guarding the API.
// An empty token leaves the API open.
type AuthConfig struct {
	Token string `mapstructure:"token"`
}

// ExtractorConfig holds settings for the generation backend.
type ExtractorConfig struct {
	Provider        string `mapstructure:"provider"`
	APIKeyEnv       string `mapstructure:"api_key_env"`
	TextModel       string `mapstructure:"text_model"`
	MultimodalModel string `mapstructure:"multimodal_model"`
	Endpoint        string `mapstructure:"endpoint"`
	TimeoutSecs     int    `mapstructure:"timeout_secs"`
}

// Load reads configuration from environment variables with the DOCUEXTRACT_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("DOCUEXTRACT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "120s")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173,http://127.0.0.1:5173")

	v.SetDefault("auth.token", "")

	// Extractor defaults
	v.SetDefault("extractor.provider", "gemini")
	v.SetDefault("extractor.api_key_env", "API_KEY")
	v.SetDefault("extractor.text_model", "gemini-2.5-flash-preview-04-17")
	v.SetDefault("extractor.multimodal_model", "gemini-2.5-flash-preview-04-17")
	v.SetDefault("extractor.endpoint", "https://generativelanguage.googleapis.com/v1beta/models")
	v.SetDefault("extractor.timeout_secs", 0)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                "DOCUEXTRACT_SERVER_PORT",
		"server.read_timeout":        "DOCUEXTRACT_SERVER_READ_TIMEOUT",
		"server.write_timeout":       "DOCUEXTRACT_SERVER_WRITE_TIMEOUT",
		"server.shutdown_timeout":    "DOCUEXTRACT_SERVER_SHUTDOWN_TIMEOUT",
		"server.environment":         "DOCUEXTRACT_SERVER_ENVIRONMENT",
		"log.level":                  "DOCUEXTRACT_LOG_LEVEL",
		"log.format":                 "DOCUEXTRACT_LOG_FORMAT",
		"cors.allowed_origins":       "DOCUEXTRACT_CORS_ALLOWED_ORIGINS",
		"auth.token":                 "DOCUEXTRACT_AUTH_TOKEN",
		"extractor.provider":         "DOCUEXTRACT_EXTRACTOR_PROVIDER",
		"extractor.api_key_env":      "DOCUEXTRACT_EXTRACTOR_API_KEY_ENV",
		"extractor.text_model":       "DOCUEXTRACT_EXTRACTOR_TEXT_MODEL",
		"extractor.multimodal_model": "DOCUEXTRACT_EXTRACTOR_MULTIMODAL_MODEL",
		"extractor.endpoint":         "DOCUEXTRACT_EXTRACTOR_ENDPOINT",
		"extractor.timeout_secs":     "DOCUEXTRACT_EXTRACTOR_TIMEOUT_SECS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if DOCUEXTRACT_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("DOCUEXTRACT_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:            serverPort,
		ReadTimeout:     v.GetDuration("server.read_timeout"),
		WriteTimeout:    v.GetDuration("server.write_timeout"),
		ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
		Environment:     v.GetString("server.environment"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: splitList(v.GetString("cors.allowed_origins")),
	}
	cfg.Auth = AuthConfig{
		Token: v.GetString("auth.token"),
	}
	cfg.Extractor = ExtractorConfig{
		Provider:        v.GetString("extractor.provider"),
		APIKeyEnv:       v.GetString("extractor.api_key_env"),
		TextModel:       v.GetString("extractor.text_model"),
		MultimodalModel: v.GetString("extractor.multimodal_model"),
		Endpoint:        v.GetString("extractor.endpoint"),
		TimeoutSecs:     v.GetInt("extractor.timeout_secs"),
	}

	return cfg, nil
}

// splitList parses a comma-separated string, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
