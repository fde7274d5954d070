package config

import (
	"strings"
	"testing"
)

// clearEnv wipes all config-relevant variables so tests start from defaults.
func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("GODOTENV_DISABLE", "1")
	for _, key := range []string{"TOKEN", "OMNIVORE_URL", "CHUNK_SIZE", "OUTPUT_FILE", "VERBOSE"} {
		t.Setenv(key, "")
	}
}

func TestNewConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig() error = %v", err)
	}

	if cfg.URL != DefaultURL {
		t.Errorf("URL = %q, want %q", cfg.URL, DefaultURL)
	}
	if cfg.ChunkSize != DefaultChunkSize {
		t.Errorf("ChunkSize = %d, want %d", cfg.ChunkSize, DefaultChunkSize)
	}
	if cfg.Token != "" || cfg.OutputFile != "" || cfg.Verbose {
		t.Errorf("unexpected non-zero defaults: %+v", cfg)
	}
}

func TestNewConfig_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("TOKEN", "secret-token")
	t.Setenv("OMNIVORE_URL", "http://localhost:8080/api/graphql")
	t.Setenv("CHUNK_SIZE", "25")
	t.Setenv("OUTPUT_FILE", "backup.csv")
	t.Setenv("VERBOSE", "true")

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig() error = %v", err)
	}

	if cfg.Token != "secret-token" {
		t.Errorf("Token = %q", cfg.Token)
	}
	if cfg.URL != "http://localhost:8080/api/graphql" {
		t.Errorf("URL = %q", cfg.URL)
	}
	if cfg.ChunkSize != 25 {
		t.Errorf("ChunkSize = %d", cfg.ChunkSize)
	}
	if cfg.OutputFile != "backup.csv" {
		t.Errorf("OutputFile = %q", cfg.OutputFile)
	}
	if !cfg.Verbose {
		t.Error("Verbose sollte true sein")
	}
}

func TestNewConfig_InvalidIntFallsBackToDefault(t *testing.T) {
	clearEnv(t)
	t.Setenv("CHUNK_SIZE", "viele")

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig() error = %v", err)
	}
	if cfg.ChunkSize != DefaultChunkSize {
		t.Errorf("ChunkSize = %d, want default %d", cfg.ChunkSize, DefaultChunkSize)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr string
	}{
		{
			name:   "valid",
			config: Config{Token: "t", URL: DefaultURL, ChunkSize: 100},
		},
		{
			name:    "missing token",
			config:  Config{URL: DefaultURL, ChunkSize: 100},
			wantErr: "TOKEN",
		},
		{
			name:    "missing url",
			config:  Config{Token: "t", ChunkSize: 100},
			wantErr: "OMNIVORE_URL",
		},
		{
			name:    "zero chunksize",
			config:  Config{Token: "t", URL: DefaultURL},
			wantErr: "chunksize",
		},
		{
			name:    "negative chunksize",
			config:  Config{Token: "t", URL: DefaultURL, ChunkSize: -1},
			wantErr: "chunksize",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Validate() error = %v, want substring %q", err, tt.wantErr)
			}
		})
	}
}
