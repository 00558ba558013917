package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	LogDir      string
	Environment string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	// CORSOrigins lists the origins allowed to call the API from a
	// browser, typically the Discord Activity origins.
	CORSOrigins    []string
	TrustedProxies []string

	DiscordClientID     string
	DiscordClientSecret string
	DiscordPublicKey    string

	// ValidateOwnership rejects equip requests for items the profile
	// does not own. Disable to accept arbitrary item ids.
	ValidateOwnership bool

	ProfileCacheSize int
	ProfileCacheTTL  time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:   getEnv(EnvLogFormat, DefaultLogFormat),
		LogDir:      getEnv(EnvLogDir, DefaultLogDir),
		Environment: getEnv(EnvEnvironment, DefaultEnvironment),

		DBUser:     getEnv(EnvDBUser, DefaultDBUser),
		DBPassword: getEnv(EnvDBPassword, DefaultDBPassword),
		DBHost:     getEnv(EnvDBHost, DefaultDBHost),
		DBPort:     getEnv(EnvDBPort, DefaultDBPort),
		DBName:     getEnv(EnvDBName, DefaultDBName),

		DBMaxConns:        getEnvAsInt(EnvDBMaxConns, DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration(EnvDBMaxConnIdleTime, DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration(EnvDBMaxConnLifetime, DefaultDBMaxConnLifetime),

		CORSOrigins:    splitList(getEnv(EnvCORSOrigins, DefaultCORSOrigins)),
		TrustedProxies: splitList(getEnv(EnvTrustedProxies, "")),

		DiscordClientID:     getEnv(EnvDiscordClientID, ""),
		DiscordClientSecret: getEnv(EnvDiscordClientSecret, ""),
		DiscordPublicKey:    getEnv(EnvDiscordPublicKey, ""),
	}

	portStr := getEnv(EnvPort, DefaultPort)
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	validateOwnership, err := strconv.ParseBool(getEnv(EnvValidateOwnership, DefaultValidateOwnership))
	if err != nil {
		return nil, fmt.Errorf("invalid EQUIP_VALIDATE_OWNERSHIP value: %w", err)
	}
	cfg.ValidateOwnership = validateOwnership

	cacheSize, err := strconv.Atoi(getEnv(EnvProfileCacheSize, DefaultProfileCacheSize))
	if err != nil {
		return nil, fmt.Errorf("invalid PROFILE_CACHE_SIZE value: %w", err)
	}
	cfg.ProfileCacheSize = cacheSize

	cacheTTL, err := time.ParseDuration(getEnv(EnvProfileCacheTTL, DefaultProfileCacheTTL))
	if err != nil {
		return nil, fmt.Errorf("invalid PROFILE_CACHE_TTL value: %w", err)
	}
	cfg.ProfileCacheTTL = cacheTTL

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an integer environment variable, falling back
// to the default on missing or unparseable values.
func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// getEnvAsDuration retrieves a duration environment variable, falling
// back to the default on missing or unparseable values.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// splitList parses a comma-separated env value into trimmed entries.
func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// DiscordConfigured reports whether OAuth credentials are present.
func (c *Config) DiscordConfigured() bool {
	return c.DiscordClientID != "" && c.DiscordClientSecret != ""
}
