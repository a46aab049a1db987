package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Planner specifics
	Store          StoreConfig
	GoogleCalendar GoogleCalendarConfig
	Gemini         GeminiConfig
	Sync           SyncConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port           int
	Mode           string
	RequestsPerMin int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// StoreConfig points at the realtime JSON store backing tasks, routines
// and rules.
type StoreConfig struct {
	BaseURL    string
	AuthSecret string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
	Timezone        string
	TokenCacheDir   string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type SyncConfig struct {
	IntervalSeconds  int
	UploadsPerMinute int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.RequestsPerMin = viper.GetInt("http_server.requests_per_min")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Realtime store
	cfg.Store.BaseURL = viper.GetString("store.base_url")
	cfg.Store.AuthSecret = viper.GetString("store.auth_secret")
	if storeURL := viper.GetString("store_base_url"); storeURL != "" {
		cfg.Store.BaseURL = storeURL
	}
	if storeSecret := viper.GetString("store_auth_secret"); storeSecret != "" {
		cfg.Store.AuthSecret = storeSecret
	}

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.Timezone = viper.GetString("google_calendar.timezone")
	cfg.GoogleCalendar.TokenCacheDir = viper.GetString("google_calendar.token_cache_dir")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// Gemini
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")
	if geminiKey := viper.GetString("gemini_api_key"); geminiKey != "" {
		cfg.Gemini.APIKey = geminiKey
	}

	// Sync
	cfg.Sync.IntervalSeconds = viper.GetInt("sync.interval_seconds")
	cfg.Sync.UploadsPerMinute = viper.GetInt("sync.uploads_per_minute")

	if cfg.Store.BaseURL == "" {
		return nil, fmt.Errorf("store.base_url is required")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.requests_per_min", 300)
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("google_calendar.calendar_id", "primary")
	viper.SetDefault("google_calendar.timezone", "Europe/Berlin")
	viper.SetDefault("google_calendar.token_cache_dir", ".credentials")
	viper.SetDefault("gemini.model", "gemini-2.0-flash")
	viper.SetDefault("sync.interval_seconds", 60)
	viper.SetDefault("sync.uploads_per_minute", 2)
}
