package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	// DefaultChunkSize ist die Anzahl Datensätze pro Seitenabruf.
	DefaultChunkSize = 100

	// DefaultURL ist der produktive GraphQL-Endpunkt von Omnivore.
	DefaultURL = "https://api-prod.omnivore.app/api/graphql"
)

type Config struct {
	Token      string
	URL        string
	ChunkSize  int
	OutputFile string
	Verbose    bool
}

func NewConfig() (*Config, error) {
	// .env laden (ignoriere Fehler wenn Datei nicht existiert)
	// GODOTENV_DISABLE verhindert in Tests das Einlesen einer lokalen .env
	if os.Getenv("GODOTENV_DISABLE") != "1" {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "⚠️  Warnung beim Laden der .env: %v\n", err)
		}
	}

	cfg := &Config{
		Token:      getEnv("TOKEN", ""),
		URL:        getEnv("OMNIVORE_URL", DefaultURL),
		ChunkSize:  getIntEnv("CHUNK_SIZE", DefaultChunkSize),
		OutputFile: getEnv("OUTPUT_FILE", ""),
		Verbose:    getBoolEnv("VERBOSE", false),
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func (c *Config) Validate() error {
	if c.Token == "" {
		return fmt.Errorf("omnivore API Token fehlt (TOKEN)")
	}
	if c.URL == "" {
		return fmt.Errorf("omnivore URL fehlt (OMNIVORE_URL)")
	}
	if c.ChunkSize <= 0 {
		return fmt.Errorf("chunksize muss größer 0 sein, war: %d", c.ChunkSize)
	}
	return nil
}
