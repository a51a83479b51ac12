package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds all configuration for the pipeline process
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT" validate:"omitempty,oneof=local development test production"`
	Port        string `mapstructure:"PORT" validate:"required,numeric"`
	LogLevel    string `mapstructure:"LOG_LEVEL" validate:"omitempty,oneof=debug info warn error"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"POSTGRES_HOST"`
	DatabasePort     string `mapstructure:"POSTGRES_PORT"`
	DatabaseUser     string `mapstructure:"POSTGRES_USER"`
	DatabasePassword string `mapstructure:"POSTGRES_PASSWORD"`
	DatabaseName     string `mapstructure:"POSTGRES_DB"`
	DatabaseSSLMode  string `mapstructure:"POSTGRES_SSL_MODE"`

	// Bitrix24 configuration
	BitrixURL     string `mapstructure:"BITRIX_URL" validate:"omitempty,url"`
	BitrixWebhook string `mapstructure:"BITRIX_WEBHOOK"`

	// Monitored portal users (comma-separated manager ids)
	ListenUsers string `mapstructure:"LISTEN_USERS"`

	// Ingestion high-water-mark seed, used when b24_calls is still empty
	IngestSeedDate string `mapstructure:"INGEST_SEED_DATE"`

	// Recording storage
	AudioDir string `mapstructure:"AUDIO_DIR"`

	// Whisper transcription server
	WhisperURL      string `mapstructure:"WHISPER_URL"`
	WhisperLanguage string `mapstructure:"WHISPER_LANGUAGE"`

	// Scoring model
	OpenAIBaseURL string `mapstructure:"OPENAI_BASE_URL"`
	OpenAIAPIKey  string `mapstructure:"GPT_API"`
	OpenAIModel   string `mapstructure:"OPENAI_MODEL"`

	// Stage driver poll intervals (seconds)
	IngestIntervalSec     int `mapstructure:"INGEST_INTERVAL_SEC"`
	TranscribeIntervalSec int `mapstructure:"TRANSCRIBE_INTERVAL_SEC"`
	AnalysisIntervalSec   int `mapstructure:"ANALYSIS_INTERVAL_SEC"`
	DispatchIntervalSec   int `mapstructure:"DISPATCH_INTERVAL_SEC"`

	// Batch sizes per poll cycle
	TranscribeBatchSize int `mapstructure:"TRANSCRIBE_BATCH_SIZE"`
	AnalysisBatchSize   int `mapstructure:"ANALYSIS_BATCH_SIZE"`

	// Ingest dedupe window: how many recent call ids are checked before insert
	RecentCallWindow int `mapstructure:"RECENT_CALL_WINDOW"`

	// Scoring retry policy
	ScoringRetryInitialSec    int `mapstructure:"SCORING_RETRY_INITIAL_SEC"`
	ScoringRetryMaxElapsedSec int `mapstructure:"SCORING_RETRY_MAX_ELAPSED_SEC"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7010")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("POSTGRES_HOST", "localhost")
	viper.SetDefault("POSTGRES_PORT", "5432")
	viper.SetDefault("POSTGRES_USER", "postgres")
	viper.SetDefault("POSTGRES_PASSWORD", "postgres")
	viper.SetDefault("POSTGRES_DB", "call_quality")
	viper.SetDefault("POSTGRES_SSL_MODE", "disable")

	// Bitrix defaults
	viper.SetDefault("BITRIX_URL", "")
	viper.SetDefault("BITRIX_WEBHOOK", "")
	viper.SetDefault("LISTEN_USERS", "")
	viper.SetDefault("INGEST_SEED_DATE", "2023-11-07T05:20:13+03:00")

	// Recording storage
	viper.SetDefault("AUDIO_DIR", "audio")

	// Whisper defaults
	viper.SetDefault("WHISPER_URL", "http://localhost:9000")
	viper.SetDefault("WHISPER_LANGUAGE", "ru")

	// Scoring defaults
	viper.SetDefault("OPENAI_BASE_URL", "https://api.openai.com")
	viper.SetDefault("GPT_API", "")
	viper.SetDefault("OPENAI_MODEL", "gpt-3.5-turbo")

	// Poll intervals: the source slept 5 minutes between cycles on every stage
	viper.SetDefault("INGEST_INTERVAL_SEC", 300)
	viper.SetDefault("TRANSCRIBE_INTERVAL_SEC", 300)
	viper.SetDefault("ANALYSIS_INTERVAL_SEC", 300)
	viper.SetDefault("DISPATCH_INTERVAL_SEC", 300)

	viper.SetDefault("TRANSCRIBE_BATCH_SIZE", 5)
	viper.SetDefault("ANALYSIS_BATCH_SIZE", 5)
	viper.SetDefault("RECENT_CALL_WINDOW", 20)

	viper.SetDefault("SCORING_RETRY_INITIAL_SEC", 15)
	viper.SetDefault("SCORING_RETRY_MAX_ELAPSED_SEC", 600)
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if err := validator.New().Struct(config); err != nil {
		return err
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	if config.IngestSeedDate != "" {
		if _, err := time.Parse(time.RFC3339, config.IngestSeedDate); err != nil {
			return fmt.Errorf("INGEST_SEED_DATE must be RFC3339: %w", err)
		}
	}

	if config.Environment == "production" {
		if config.BitrixURL == "" || config.BitrixWebhook == "" {
			return fmt.Errorf("BITRIX_URL and BITRIX_WEBHOOK must be set in production")
		}
		if config.OpenAIAPIKey == "" {
			return fmt.Errorf("GPT_API must be set in production")
		}
	}

	return nil
}

// ManagerIDs returns the monitored portal user ids parsed from LISTEN_USERS
func (c *Config) ManagerIDs() []string {
	if strings.TrimSpace(c.ListenUsers) == "" {
		return nil
	}
	parts := strings.Split(c.ListenUsers, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			ids = append(ids, p)
		}
	}
	return ids
}

// SeedStartDate returns the parsed ingestion seed timestamp
func (c *Config) SeedStartDate() time.Time {
	t, err := time.Parse(time.RFC3339, c.IngestSeedDate)
	if err != nil {
		return time.Time{}
	}
	return t
}

// IngestInterval returns the ingestion poll interval
func (c *Config) IngestInterval() time.Duration {
	return time.Duration(c.IngestIntervalSec) * time.Second
}

// TranscribeInterval returns the transcription poll interval
func (c *Config) TranscribeInterval() time.Duration {
	return time.Duration(c.TranscribeIntervalSec) * time.Second
}

// AnalysisInterval returns the analysis poll interval
func (c *Config) AnalysisInterval() time.Duration {
	return time.Duration(c.AnalysisIntervalSec) * time.Second
}

// DispatchInterval returns the dispatch poll interval
func (c *Config) DispatchInterval() time.Duration {
	return time.Duration(c.DispatchIntervalSec) * time.Second
}
