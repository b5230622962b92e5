package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Application paths
	OutputDir string `json:"output_dir"`
	LogDir    string `json:"log_dir"`

	Debug bool `json:"debug"`

	// Transcript fetching
	Transcript TranscriptConfig `json:"transcript"`

	// Generative cleaning
	Cleaner CleanerConfig `json:"cleaner"`
}

type TranscriptConfig struct {
	// Preferred caption languages, in priority order.
	Languages []string `json:"languages"`

	// Timeout for the oEmbed title lookup.
	RequestTimeout time.Duration `json:"request_timeout"`
}

type CleanerConfig struct {
	// APIKey may be empty at startup. The cleaner validates it when a
	// rewrite is attempted so raw transcripts still save without a key.
	APIKey         string        `json:"-"`
	Model          string        `json:"model"`
	APIVersion     string        `json:"api_version"`
	RequestTimeout time.Duration `json:"request_timeout"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		OutputDir: getEnv("OUTPUT_DIR", "transcripts"),
		LogDir:    getEnv("LOG_DIR", "logs"),
		Debug:     getEnvAsBool("DEBUG", false),

		Transcript: TranscriptConfig{
			Languages:      getEnvAsStringSlice("TRANSCRIPT_LANGUAGES", []string{"en"}),
			RequestTimeout: getEnvAsDuration("REQUEST_TIMEOUT", 30*time.Second),
		},

		Cleaner: CleanerConfig{
			APIKey:         getEnv("GOOGLE_API_KEY", ""),
			Model:          getEnv("GEMINI_MODEL", "gemini-2.0-flash-exp"),
			APIVersion:     getEnv("GEMINI_API_VERSION", "v1alpha"),
			RequestTimeout: getEnvAsDuration("CLEAN_TIMEOUT", 2*time.Minute),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if err := validatePaths(c); err != nil {
		return err
	}

	if err := validateTimeouts(c); err != nil {
		return err
	}

	if err := validateServices(c); err != nil {
		return err
	}

	return nil
}

func validatePaths(c *Config) error {
	if c.OutputDir == "" {
		return fmt.Errorf("output directory must not be empty")
	}
	if c.LogDir == "" {
		return fmt.Errorf("log directory must not be empty")
	}
	return nil
}

func validateTimeouts(c *Config) error {
	if c.Transcript.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive")
	}
	if c.Cleaner.RequestTimeout <= 0 {
		return fmt.Errorf("clean timeout must be positive")
	}
	return nil
}

func validateServices(c *Config) error {
	if len(c.Transcript.Languages) == 0 {
		return fmt.Errorf("at least one transcript language is required")
	}
	if c.Cleaner.Model == "" {
		return fmt.Errorf("cleaner model must not be empty")
	}
	return nil
}

// Helper functions for reading environment variables
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsStringSlice(key string, defaultValue []string) []string {
	if value, exists := os.LookupEnv(key); exists {
		if value = strings.TrimSpace(value); value != "" {
			return strings.Split(value, ",")
		}
	}
	return defaultValue
}
