package config

import (
	"errors"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var ErrMissingGeminiKey = errors.New("GEMINI_API_KEY is required when REQUIRE_GEMINI_KEY=true")

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Gemini   GeminiConfig
	Voice    VoiceConfig
	Auth     AuthConfig
}

type AppConfig struct {
	Title              string
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	ActivityTopic      string
}

type DatabaseConfig struct {
	Connection string
}

type GeminiConfig struct {
	BaseURL        string
	APIKey         string
	DefaultModel   string
	TimeoutSeconds int
	RequireKey     bool
}

type VoiceConfig struct {
	APIURL  string
	APIKey  string
	UseMock bool
}

type AuthConfig struct {
	JWTSecret string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Title:              getEnv("APP_TITLE", "Krishi Sakhi - Smart Farming Assistant"),
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			ActivityTopic:      getEnv("USER_ACTIVITY_TOPIC_NAME", "USER_ACTIVITY"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", "sqlite://krishi_sakhi.db"),
		},
		Gemini: GeminiConfig{
			BaseURL:        getEnv("GEMINI_API_BASE", "https://generativelanguage.googleapis.com/v1beta"),
			APIKey:         getEnv("GEMINI_API_KEY", ""),
			DefaultModel:   getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
			TimeoutSeconds: getEnvAsInt("GEMINI_TIMEOUT_SECONDS", 60),
			RequireKey:     getEnv("REQUIRE_GEMINI_KEY", "false") == "true",
		},
		Voice: VoiceConfig{
			APIURL:  getEnv("VOICE_API_URL", ""),
			APIKey:  getEnv("VOICE_API_KEY", ""),
			UseMock: getEnv("VOICE_USE_MOCK", "true") == "true",
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", "default_secret"),
		},
	}
}

// Validate enforces startup-time configuration requirements. Strict
// deployments fail hard on a missing key; development falls back to the
// mock chat provider.
func (c *Config) Validate() error {
	if c.Gemini.RequireKey && c.Gemini.APIKey == "" {
		return ErrMissingGeminiKey
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
