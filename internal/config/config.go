package config

import (
	"fmt"
	"strings"
	"time"

	apperrors "hackathon-portal-backend/internal/errors"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Document store configuration
	MongoURI      string `mapstructure:"MONGO_URI"`
	MongoDatabase string `mapstructure:"MONGO_DATABASE"`

	// Optional Redis for the distributed team write lock
	RedisURL string `mapstructure:"REDIS_URL"`

	// Identity provider configuration
	AuthProvider            string   `mapstructure:"AUTH_PROVIDER"`
	FirebaseProjectID       string   `mapstructure:"FIREBASE_PROJECT_ID"`
	FirebaseCredentialsFile string   `mapstructure:"FIREBASE_CREDENTIALS_FILE"`
	LocalAuthSecret         string   `mapstructure:"LOCAL_AUTH_SECRET"`
	LocalAdminPassword      string   `mapstructure:"LOCAL_ADMIN_PASSWORD"`
	SuperAdminEmails        []string `mapstructure:"SUPER_ADMIN_EMAILS"`

	// Spreadsheet configuration
	SheetsCredentialsFile string `mapstructure:"SHEETS_CREDENTIALS_FILE"`
	SheetID               string `mapstructure:"SHEET_ID"`
	SheetName             string `mapstructure:"SHEET_NAME"`

	// Generative text API (team name suggestions)
	GenAIAPIKey  string `mapstructure:"GENAI_API_KEY"`
	GenAIModel   string `mapstructure:"GENAI_MODEL"`
	GenAIBaseURL string `mapstructure:"GENAI_BASE_URL"`

	// Background work
	SchedulerInterval time.Duration `mapstructure:"SCHEDULER_INTERVAL"`
	TaskWorkers       int           `mapstructure:"TASK_WORKERS"`
	TaskMaxRetries    int           `mapstructure:"TASK_MAX_RETRIES"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Set default values
	setDefaults(v)

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	v.AutomaticEnv()
	bindEnv(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	config.AllowedOrigins = splitList(config.AllowedOrigins, false)
	config.SuperAdminEmails = splitList(config.SuperAdminEmails, true)

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, apperrors.NewConfigurationError("config validation failed: " + err.Error())
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")

	// CORS defaults
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")

	// Store defaults
	v.SetDefault("MONGO_DATABASE", "hackathon")

	// Identity defaults
	v.SetDefault("AUTH_PROVIDER", "firebase")

	// Spreadsheet defaults
	v.SetDefault("SHEET_NAME", "Sheet1")

	// Generative text defaults
	v.SetDefault("GENAI_MODEL", "gemini-1.5-flash")
	v.SetDefault("GENAI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta")

	// Background work defaults
	v.SetDefault("SCHEDULER_INTERVAL", "1m")
	v.SetDefault("TASK_WORKERS", 2)
	v.SetDefault("TASK_MAX_RETRIES", 3)
}

// bindEnv makes keys without a default visible to Unmarshal; AutomaticEnv
// alone only answers explicit Get calls.
func bindEnv(v *viper.Viper) {
	for _, key := range []string{
		"MONGO_URI", "REDIS_URL",
		"FIREBASE_PROJECT_ID", "FIREBASE_CREDENTIALS_FILE", "LOCAL_AUTH_SECRET", "LOCAL_ADMIN_PASSWORD", "SUPER_ADMIN_EMAILS",
		"SHEETS_CREDENTIALS_FILE", "SHEET_ID",
		"GENAI_API_KEY",
	} {
		_ = v.BindEnv(key)
	}
}

// splitList accepts either a YAML list or a single comma-separated string.
func splitList(in []string, lower bool) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0, len(in))
	for _, raw := range in {
		for _, part := range strings.Split(raw, ",") {
			item := strings.TrimSpace(part)
			if lower {
				item = strings.ToLower(item)
			}
			if item == "" {
				continue
			}
			if _, ok := seen[item]; ok {
				continue
			}
			seen[item] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}

func validate(config *Config) error {
	if config.MongoURI == "" {
		return fmt.Errorf("MONGO_URI is required")
	}
	if config.MongoDatabase == "" {
		return fmt.Errorf("database name is required")
	}

	switch config.AuthProvider {
	case "firebase":
		if config.FirebaseProjectID == "" || config.FirebaseCredentialsFile == "" {
			return fmt.Errorf("FIREBASE_PROJECT_ID and FIREBASE_CREDENTIALS_FILE are required for the firebase auth provider")
		}
	case "local":
		if config.IsProduction() {
			return fmt.Errorf("the local auth provider cannot be used in production")
		}
		if len(config.LocalAuthSecret) < 16 {
			return fmt.Errorf("LOCAL_AUTH_SECRET must be at least 16 characters")
		}
	default:
		return fmt.Errorf("unknown AUTH_PROVIDER %q", config.AuthProvider)
	}

	if config.SheetsCredentialsFile == "" || config.SheetID == "" {
		return fmt.Errorf("SHEETS_CREDENTIALS_FILE and SHEET_ID are required")
	}

	if config.SchedulerInterval <= 0 {
		return fmt.Errorf("SCHEDULER_INTERVAL must be positive")
	}
	if config.TaskWorkers <= 0 {
		return fmt.Errorf("TASK_WORKERS must be positive")
	}
	if config.TaskMaxRetries < 0 {
		return fmt.Errorf("TASK_MAX_RETRIES cannot be negative")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// IsSuperAdminEmail reports whether email is on the super-admin allowlist.
func (c *Config) IsSuperAdminEmail(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return false
	}
	for _, allowed := range c.SuperAdminEmails {
		if allowed == email {
			return true
		}
	}
	return false
}

// SuggestionsEnabled reports whether the generative text API is configured.
func (c *Config) SuggestionsEnabled() bool {
	return c.GenAIAPIKey != ""
}
