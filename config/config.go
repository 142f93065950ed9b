package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	DBName       string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  time.Duration
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port            string
	JWTSecret       string
	ShutdownTimeout time.Duration
}

// RedisConfig holds view cache configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	ViewTTL  time.Duration
}

// NATSConfig holds event bus configuration
type NATSConfig struct {
	URL           string
	ClientID      string
	MaxReconnects int
	ReconnectWait time.Duration
}

// StorageConfig holds object storage configuration
type StorageConfig struct {
	Endpoint     string
	AccessKey    string
	SecretKey    string
	UseSSL       bool
	AvatarBucket string
	PostBucket   string
	PublicURL    string
}

// LoadDatabaseConfig loads database configuration from environment variables
func LoadDatabaseConfig(prefix string) (*DatabaseConfig, error) {
	cfg := &DatabaseConfig{
		Host:         getEnv(prefix+"DB_HOST", "postgres"),
		User:         getEnv(prefix+"DB_USER", "postgres"),
		Password:     getEnv(prefix+"DB_PASSWORD", "postgres"),
		DBName:       getEnv(prefix+"DB_NAME", "aegis_db"),
		SSLMode:      getEnv(prefix+"DB_SSLMODE", "disable"),
		MaxOpenConns: getEnvAsInt(prefix+"DB_MAX_OPEN_CONNS", 25),
		MaxIdleConns: getEnvAsInt(prefix+"DB_MAX_IDLE_CONNS", 5),
		MaxLifetime:  getEnvAsDuration(prefix+"DB_MAX_LIFETIME", 5*time.Minute),
	}

	var err error
	cfg.Port, err = strconv.Atoi(getEnv(prefix+"DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid database port: %w", err)
	}

	if cfg.DBName == "" {
		return nil, fmt.Errorf("database name is required (set %sDB_NAME)", prefix)
	}

	return cfg, nil
}

// LoadServerConfig loads HTTP server configuration from environment variables
func LoadServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:            getEnv("HTTP_PORT", "8080"),
		JWTSecret:       getEnv("JWT_SECRET", "your-secret-key"),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

// LoadRedisConfig loads view cache configuration from environment variables
func LoadRedisConfig() *RedisConfig {
	return &RedisConfig{
		Addr:     getEnv("REDIS_ADDR", "redis:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       getEnvAsInt("REDIS_DB", 0),
		ViewTTL:  getEnvAsDuration("VIEW_CACHE_TTL", time.Hour),
	}
}

// LoadNATSConfig loads event bus configuration from environment variables
func LoadNATSConfig() *NATSConfig {
	return &NATSConfig{
		URL:           getEnv("NATS_URL", "nats://nats:4222"),
		ClientID:      getEnv("NATS_CLIENT_ID", "aegis"),
		MaxReconnects: getEnvAsInt("NATS_MAX_RECONNECTS", 10),
		ReconnectWait: getEnvAsDuration("NATS_RECONNECT_WAIT", 2*time.Second),
	}
}

// LoadStorageConfig loads object storage configuration from environment variables
func LoadStorageConfig() *StorageConfig {
	return &StorageConfig{
		Endpoint:     getEnv("STORAGE_ENDPOINT", "minio:9000"),
		AccessKey:    getEnv("STORAGE_ACCESS_KEY", "minioadmin"),
		SecretKey:    getEnv("STORAGE_SECRET_KEY", "minioadmin"),
		UseSSL:       getEnvAsBool("STORAGE_USE_SSL", false),
		AvatarBucket: getEnv("STORAGE_AVATAR_BUCKET", "avatars"),
		PostBucket:   getEnv("STORAGE_POST_BUCKET", "posts"),
		PublicURL:    getEnv("STORAGE_PUBLIC_URL", ""),
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvAsInt gets an environment variable as int or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsBool gets an environment variable as bool or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration gets an environment variable as duration or returns a default value
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
