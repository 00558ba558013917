package config

import "time"

// Environment variable names
const (
	EnvPort        = "PORT"
	EnvLogLevel    = "LOG_LEVEL"
	EnvLogFormat   = "LOG_FORMAT"
	EnvLogDir      = "LOG_DIR"
	EnvEnvironment = "ENVIRONMENT"

	EnvDBUser     = "DB_USER"
	EnvDBPassword = "DB_PASSWORD"
	EnvDBHost     = "DB_HOST"
	EnvDBPort     = "DB_PORT"
	EnvDBName     = "DB_NAME"

	EnvDBMaxConns        = "DB_MAX_CONNS"
	EnvDBMaxConnIdleTime = "DB_MAX_CONN_IDLE_TIME"
	EnvDBMaxConnLifetime = "DB_MAX_CONN_LIFETIME"

	EnvCORSOrigins    = "CORS_ORIGINS"
	EnvTrustedProxies = "TRUSTED_PROXIES"

	EnvDiscordClientID     = "DISCORD_CLIENT_ID"
	EnvDiscordClientSecret = "DISCORD_CLIENT_SECRET"
	EnvDiscordPublicKey    = "DISCORD_PUBLIC_KEY"

	EnvValidateOwnership = "EQUIP_VALIDATE_OWNERSHIP"
	EnvProfileCacheSize  = "PROFILE_CACHE_SIZE"
	EnvProfileCacheTTL   = "PROFILE_CACHE_TTL"
)

// Default values used when an environment variable is unset
const (
	DefaultPort        = "8080"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultLogDir      = "logs"
	DefaultEnvironment = "dev"

	DefaultDBUser     = "postgres"
	DefaultDBPassword = "postgres"
	DefaultDBHost     = "localhost"
	DefaultDBPort     = "5432"
	DefaultDBName     = "equipdetail"

	DefaultCORSOrigins = "*"

	DefaultValidateOwnership = "true"
	DefaultProfileCacheSize  = "1024"
	DefaultProfileCacheTTL   = "30s"
)

// Database pool defaults
const (
	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute
)
