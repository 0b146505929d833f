package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fadedpez/blackjack/internal/logging"
	"github.com/joho/godotenv"
)

// Storage backends for round history
const (
	StorageMemory = "memory"
	StorageSQLite = "sqlite"
)

const (
	MinDecks   = 1
	MaxDecks   = 8
	MaxPlayers = 8
	MaxHistory = 20

	DefaultHistory = 3
)

// Config holds all configuration for the application
type Config struct {
	// Table
	Decks   int // 0 means ask at the table
	Players int // 0 means ask at the table
	Seed    int64

	// Logging
	LogLevel string
	LogFile  string

	// Round history backend, "memory" or "sqlite"
	Storage string

	// Optional HCL file with house rules
	RulesFile string

	// Pace turns on the pauses between dealt cards
	Pace bool

	// History is how many of each player's rounds are shown at the end, 0 for none
	History int
}

// Load reads the configuration from environment variables, after loading
// envFile (or .env when empty) if it exists
func Load(envFile string) (*Config, error) {
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		// Only return error if file exists but couldn't be loaded
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading %s: %w", envFile, err)
		}
	}

	decks, err := getIntWithDefault("BLACKJACK_DECKS", 0)
	if err != nil {
		return nil, err
	}
	players, err := getIntWithDefault("BLACKJACK_PLAYERS", 0)
	if err != nil {
		return nil, err
	}
	seed, err := strconv.ParseInt(getEnvWithDefault("BLACKJACK_SEED", "0"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("BLACKJACK_SEED must be a whole number: %w", err)
	}
	history, err := getIntWithDefault("BLACKJACK_HISTORY", DefaultHistory)
	if err != nil {
		return nil, err
	}
	pace, err := strconv.ParseBool(getEnvWithDefault("BLACKJACK_PACE", "true"))
	if err != nil {
		return nil, fmt.Errorf("BLACKJACK_PACE must be true or false: %w", err)
	}

	cfg := &Config{
		Decks:     decks,
		Players:   players,
		Seed:      seed,
		LogLevel:  strings.ToLower(getEnvWithDefault("BLACKJACK_LOG_LEVEL", "warn")),
		LogFile:   os.Getenv("BLACKJACK_LOG_FILE"),
		Storage:   strings.ToLower(getEnvWithDefault("BLACKJACK_STORAGE", StorageMemory)),
		RulesFile: os.Getenv("BLACKJACK_RULES_FILE"),
		Pace:      pace,
		History:   history,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every value is in range. Call again after applying overrides.
func (c *Config) Validate() error {
	if c.Decks != 0 && (c.Decks < MinDecks || c.Decks > MaxDecks) {
		return fmt.Errorf("number of decks must be between %d and %d, got %d", MinDecks, MaxDecks, c.Decks)
	}
	if c.Players < 0 || c.Players > MaxPlayers {
		return fmt.Errorf("number of players must be between 1 and %d, got %d", MaxPlayers, c.Players)
	}
	if c.History < 0 || c.History > MaxHistory {
		return fmt.Errorf("history must be between 0 and %d rounds, got %d", MaxHistory, c.History)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.Storage {
	case StorageMemory, StorageSQLite:
	default:
		return fmt.Errorf("storage must be %q or %q, got %q", StorageMemory, StorageSQLite, c.Storage)
	}
	return nil
}

// getEnvWithDefault returns environment variable value or default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntWithDefault(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%s must be a whole number, got %q", key, value)
	}
	return n, nil
}
