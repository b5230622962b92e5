package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.OutputDir != "transcripts" {
		t.Errorf("expected transcripts, got %s", cfg.OutputDir)
	}
	if cfg.LogDir != "logs" {
		t.Errorf("expected logs, got %s", cfg.LogDir)
	}
	if cfg.Cleaner.Model != "gemini-2.0-flash-exp" {
		t.Errorf("expected gemini-2.0-flash-exp, got %s", cfg.Cleaner.Model)
	}
	if cfg.Cleaner.APIVersion != "v1alpha" {
		t.Errorf("expected v1alpha, got %s", cfg.Cleaner.APIVersion)
	}
	if len(cfg.Transcript.Languages) != 1 || cfg.Transcript.Languages[0] != "en" {
		t.Errorf("expected [en], got %v", cfg.Transcript.Languages)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("OUTPUT_DIR", "/tmp/out")
	t.Setenv("LOG_DIR", "/tmp/logs")
	t.Setenv("DEBUG", "true")
	t.Setenv("TRANSCRIPT_LANGUAGES", "de,en")
	t.Setenv("REQUEST_TIMEOUT", "10s")
	t.Setenv("GOOGLE_API_KEY", "test-key")
	t.Setenv("GEMINI_MODEL", "gemini-test")
	t.Setenv("CLEAN_TIMEOUT", "1m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.OutputDir != "/tmp/out" {
		t.Errorf("expected /tmp/out, got %s", cfg.OutputDir)
	}
	if !cfg.Debug {
		t.Error("expected debug to be enabled")
	}
	if len(cfg.Transcript.Languages) != 2 || cfg.Transcript.Languages[0] != "de" {
		t.Errorf("expected [de en], got %v", cfg.Transcript.Languages)
	}
	if cfg.Transcript.RequestTimeout != 10*time.Second {
		t.Errorf("expected 10s, got %s", cfg.Transcript.RequestTimeout)
	}
	if cfg.Cleaner.APIKey != "test-key" {
		t.Errorf("expected test-key, got %s", cfg.Cleaner.APIKey)
	}
	if cfg.Cleaner.Model != "gemini-test" {
		t.Errorf("expected gemini-test, got %s", cfg.Cleaner.Model)
	}
	if cfg.Cleaner.RequestTimeout != time.Minute {
		t.Errorf("expected 1m, got %s", cfg.Cleaner.RequestTimeout)
	}
}

func TestLoadMissingKeyIsNotFatal(t *testing.T) {
	// Raw transcripts must still save without an API key, so Load
	// succeeds with the key left empty.
	t.Setenv("GOOGLE_API_KEY", "")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Cleaner.APIKey != "" {
		t.Errorf("expected empty API key, got %q", cfg.Cleaner.APIKey)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		expectErr bool
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name:      "empty output dir",
			mutate:    func(c *Config) { c.OutputDir = "" },
			expectErr: true,
		},
		{
			name:      "zero request timeout",
			mutate:    func(c *Config) { c.Transcript.RequestTimeout = 0 },
			expectErr: true,
		},
		{
			name:      "no languages",
			mutate:    func(c *Config) { c.Transcript.Languages = nil },
			expectErr: true,
		},
		{
			name:      "empty model",
			mutate:    func(c *Config) { c.Cleaner.Model = "" },
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.mutate(cfg)

			err = cfg.Validate()
			if tt.expectErr && err == nil {
				t.Error("expected error but got none")
			}
			if !tt.expectErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
