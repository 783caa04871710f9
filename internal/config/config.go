package config

import (
	"os"
	"strings"
)

const (
	EnvProduction  = "production"
	EnvDevelopment = "development"
)

type Config struct {
	Env      string
	Server   ServerConfig
	Auth     AuthConfig
	Postgres PostgresConfig
	CORS     CORSConfig
	LogLevel string
}

type ServerConfig struct {
	Host string
	Port string
}

type AuthConfig struct {
	AdminUser     string
	AdminPassHash string
	JWTSecret     string
	TokenTTL      string
}

type CORSConfig struct {
	FrontendURL string
}

type PostgresConfig struct {
	DatabaseURL string
	Host        string
	Port        string
	User        string
	Password    string
	Database    string
	SSLMode     string
}

func Load() Config {
	return Config{
		Env: getenv("APP_ENV", EnvDevelopment),
		Server: ServerConfig{
			Host: getenv("HOST", "0.0.0.0"),
			Port: getenv("PORT", "8080"),
		},
		Auth: AuthConfig{
			AdminUser:     os.Getenv("ADMIN_USER"),
			AdminPassHash: stripQuotes(os.Getenv("ADMIN_PASS_HASH")),
			JWTSecret:     os.Getenv("JWT_SECRET"),
			TokenTTL:      getenv("TOKEN_TTL", "1h"),
		},
		Postgres: PostgresConfig{
			DatabaseURL: os.Getenv("DATABASE_URL"),
			Host:        getenv("PGHOST", "localhost"),
			Port:        getenv("PGPORT", "5432"),
			User:        os.Getenv("PGUSER"),
			Password:    os.Getenv("PGPASSWORD"),
			Database:    os.Getenv("PGDATABASE"),
			SSLMode:     getenv("PGSSLMODE", "disable"),
		},
		CORS: CORSConfig{
			FrontendURL: os.Getenv("FRONTEND_URL"),
		},
		LogLevel: getenv("LOG_LEVEL", "info"),
	}
}

func (c Config) IsProduction() bool {
	return c.Env == EnvProduction
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

// stripQuotes removes surrounding double quotes that .env files sometimes
// carry around bcrypt hashes.
func stripQuotes(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return strings.TrimPrefix(strings.TrimSuffix(s, `"`), `"`)
	}
	return s
}
