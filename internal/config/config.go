package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Server configuration
type ServerConfig struct {
	Port string
	Host string
}

// MongoDB configuration
type MongoConfig struct {
	URI      string
	Database string
}

// Auth configuration
type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// Config holds all application configuration
type Config struct {
	Server      ServerConfig
	Mongo       MongoConfig
	Auth        AuthConfig
	Development bool
}

// Default configuration values
const (
	DefaultServerPort    = "8080"
	DefaultServerHost    = ""
	DefaultMongoURI      = "mongodb://localhost:27017/staffhub"
	DefaultMongoDB       = "staffhub"
	DefaultJWTSecret     = "change-me"
	DefaultTokenTTLHours = 24
	// Pagination defaults
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// New returns a new Config with values from the environment, falling
// back to defaults.
func New() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", DefaultServerPort),
			Host: getEnv("SERVER_HOST", DefaultServerHost),
		},
		Mongo: MongoConfig{
			URI:      getEnv("MONGO_URI", DefaultMongoURI),
			Database: getEnv("MONGO_DB", DefaultMongoDB),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", DefaultJWTSecret),
			TokenTTL:  time.Duration(getEnvInt("TOKEN_TTL_HOURS", DefaultTokenTTLHours)) * time.Hour,
		},
		Development: getEnvBool("DEVELOPMENT", false),
	}
}

// Address returns the server address string
func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		switch strings.ToLower(value) {
		case "1", "true", "t", "yes", "y", "on":
			return true
		case "0", "false", "f", "no", "n", "off":
			return false
		}
	}
	return defaultValue
}
