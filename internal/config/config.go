package config

import (
	"os"
	"strconv"
	"time"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	ApplicationName    string
	ConnectTimeoutSec  int
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// MinIOConfig holds object storage settings for profile photos.
// An empty Endpoint disables photo storage.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// AuthConfig holds bearer token verification settings.
type AuthConfig struct {
	JWTSecret       string
	JWTIssuer       string
	TokenTTLMinutes int
}

// PhotoConfig limits profile photo uploads.
type PhotoConfig struct {
	MaxBytes      int64
	URLExpirySec  int
	AllowedPrefix string
}

// DraftConfig controls the in-memory editor drafts.
type DraftConfig struct {
	TTLMinutes       int
	PurgeIntervalSec int
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level    string
	Timezone string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost  string
	Port     string
	Database DatabaseConfig
	MinIO    MinIOConfig
	Auth     AuthConfig
	Photo    PhotoConfig
	Draft    DraftConfig
	Log      LogConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost: getEnv("APP_HOST", "localhost:8080"),
		Port:    getEnv("PORT", "8080"), // default only for non-sensitive value
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			ApplicationName:    getEnv("DB_APPLICATION_NAME", "cvapi"),
			ConnectTimeoutSec:  getEnvInt("DB_CONNECT_TIMEOUT_SEC", 5),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		Auth: AuthConfig{
			JWTSecret:       getEnv("JWT_SECRET", ""),
			JWTIssuer:       getEnv("JWT_ISSUER", ""),
			TokenTTLMinutes: getEnvInt("JWT_TOKEN_TTL_MIN", 60),
		},
		Photo: PhotoConfig{
			MaxBytes:      int64(getEnvInt("PHOTO_MAX_BYTES", 5<<20)),
			URLExpirySec:  getEnvInt("PHOTO_URL_EXPIRY_SEC", 900),
			AllowedPrefix: getEnv("PHOTO_ALLOWED_TYPE_PREFIX", "image/"),
		},
		Draft: DraftConfig{
			TTLMinutes:       getEnvInt("DRAFT_TTL_MIN", 24*60),
			PurgeIntervalSec: getEnvInt("DRAFT_PURGE_INTERVAL_SEC", 300),
		},
		Log: LogConfig{
			Level:    getEnv("LOG_LEVEL", "info"),
			Timezone: getEnv("APP_TIMEZONE", "UTC"),
		},
	}
}

// Location resolves the configured timezone, falling back to UTC.
func (c LogConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// TokenTTL is the lifetime of tokens minted by the devtoken command.
func (c AuthConfig) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLMinutes) * time.Minute
}

// URLExpiry is the validity of presigned photo URLs.
func (c PhotoConfig) URLExpiry() time.Duration {
	return time.Duration(c.URLExpirySec) * time.Second
}

// TTL is how long an untouched draft is kept.
func (c DraftConfig) TTL() time.Duration {
	return time.Duration(c.TTLMinutes) * time.Minute
}

// PurgeInterval is how often expired drafts are swept.
func (c DraftConfig) PurgeInterval() time.Duration {
	return time.Duration(c.PurgeIntervalSec) * time.Second
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
