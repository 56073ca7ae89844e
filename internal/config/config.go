package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

const (
	defaultDatabaseURL     = "postgres://localhost:5432/anibot?sslmode=disable"
	defaultAnilistURL      = "https://graphql.anilist.co"
	defaultLocale          = "en"
	defaultLogLevel        = "info"
	defaultReleaseInterval = 10 * time.Minute
	minReleaseInterval     = time.Minute
)

type Config struct {
	Token             string
	GuildID           string
	DatabaseURL       string
	MigrationsPath    string
	AnilistURL        string
	DefaultLocale     string
	LogLevel          string
	AnnounceChannelID string
	ReleaseInterval   time.Duration
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	// .env is optional when the variables come from the environment (Docker, CI, etc.).
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds and validates a Config using getenv to read variables.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		Token:             strings.TrimSpace(getenv("TOKEN")),
		GuildID:           strings.TrimSpace(getenv("GUILD_ID")),
		DatabaseURL:       strings.TrimSpace(getenv("DATABASE_URL")),
		MigrationsPath:    strings.TrimSpace(getenv("MIGRATIONS_PATH")),
		AnilistURL:        strings.TrimSpace(getenv("ANILIST_URL")),
		DefaultLocale:     strings.TrimSpace(getenv("DEFAULT_LOCALE")),
		LogLevel:          strings.ToLower(strings.TrimSpace(getenv("LOG_LEVEL"))),
		AnnounceChannelID: strings.TrimSpace(getenv("ANNOUNCE_CHANNEL_ID")),
	}

	if raw := strings.TrimSpace(getenv("RELEASE_INTERVAL")); raw != "" {
		interval, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("config: RELEASE_INTERVAL invalid (%q): %w", raw, err)
		}
		cfg.ReleaseInterval = interval
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applies defaults and checks every rule on the loaded configuration.
func (c *Config) validate() error {
	if c.Token == "" {
		return fmt.Errorf("config: TOKEN is required and cannot be empty")
	}

	if c.GuildID != "" && !isSnowflake(c.GuildID) {
		return fmt.Errorf("config: GUILD_ID must be a Discord server ID (digits only)")
	}
	if c.AnnounceChannelID != "" && !isSnowflake(c.AnnounceChannelID) {
		return fmt.Errorf("config: ANNOUNCE_CHANNEL_ID must be a Discord channel ID (digits only)")
	}

	if c.DatabaseURL == "" {
		// Local default when DATABASE_URL is not provided.
		c.DatabaseURL = defaultDatabaseURL
	}
	if err := checkURL("DATABASE_URL", c.DatabaseURL); err != nil {
		return err
	}

	if c.AnilistURL == "" {
		c.AnilistURL = defaultAnilistURL
	}
	if err := checkURL("ANILIST_URL", c.AnilistURL); err != nil {
		return err
	}

	if c.DefaultLocale == "" {
		c.DefaultLocale = defaultLocale
	}
	if _, err := language.Parse(c.DefaultLocale); err != nil {
		return fmt.Errorf("config: DEFAULT_LOCALE invalid (%q): %w", c.DefaultLocale, err)
	}

	switch c.LogLevel {
	case "":
		c.LogLevel = defaultLogLevel
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: LOG_LEVEL must be one of debug, info, warn, error (got %q)", c.LogLevel)
	}

	if c.ReleaseInterval == 0 {
		c.ReleaseInterval = defaultReleaseInterval
	}
	if c.ReleaseInterval < minReleaseInterval {
		return fmt.Errorf("config: RELEASE_INTERVAL must be at least %s (got %s)", minReleaseInterval, c.ReleaseInterval)
	}

	return nil
}

func checkURL(name, raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("config: %s invalid (%q): %w", name, raw, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: %s invalid (%q): missing scheme or host", name, raw)
	}
	return nil
}

func isSnowflake(id string) bool {
	for _, r := range id {
		if r < '0' || r > '9' {
			return false
		}
	}
	return id != ""
}
