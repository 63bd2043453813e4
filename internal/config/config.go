package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// App holds the runtime configuration loaded from environment variables.
type App struct {
	Env            string
	BaseURL        string
	AuthHeader     string
	RequestTimeout time.Duration

	// Credential storage (the browser localStorage analog).
	TokenBackend string // memory | file | redis
	TokenPath    string
	RedisAddr    string
	RedisKey     string

	// Mock backend settings (cmd/mockapi only).
	HTTPPort        string
	JWTIssuer       string
	JWTSigningKey   string
	SessionTTL      time.Duration
	AdminEmail      string
	AdminPassword   string
	RateLimitPerMin int
	SeedDemo        bool
}

// Load returns application config populated from environment variables with
// sensible defaults. A .env file in the working directory is loaded first if
// present.
func Load() App {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			log.Printf("loading .env failed: %v", err)
		}
	}

	return App{
		Env:             getEnv("APP_ENV", "dev"),
		BaseURL:         getEnv("CLUB_API_URL", "http://localhost:5000/api"),
		AuthHeader:      getEnv("CLUB_AUTH_HEADER", "authToken"),
		RequestTimeout:  durationEnv("CLUB_REQUEST_TIMEOUT", 10*time.Second),
		TokenBackend:    getEnv("CLUB_TOKEN_BACKEND", "file"),
		TokenPath:       getEnv("CLUB_TOKEN_PATH", defaultTokenPath()),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisKey:        getEnv("CLUB_TOKEN_REDIS_KEY", "clubsync:authToken"),
		HTTPPort:        getEnv("HTTP_PORT", "5000"),
		JWTIssuer:       getEnv("JWT_ISSUER", "clubsync-mockapi"),
		JWTSigningKey:   getEnv("JWT_SIGNING_KEY", "dev-signing-secret-change"),
		SessionTTL:      durationEnv("SESSION_TTL", 7*24*time.Hour),
		AdminEmail:      getEnv("ADMIN_EMAIL", "admin@club.local"),
		AdminPassword:   getEnv("ADMIN_PASSWORD", "admin123"),
		RateLimitPerMin: intEnv("RATE_LIMIT_PER_MIN", 120),
		SeedDemo:        boolEnv("MOCK_SEED", true),
	}
}

func defaultTokenPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".clubsync-token"
	}
	return home + string(os.PathSeparator) + ".clubsync-token"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		d, err := time.ParseDuration(val)
		if err != nil {
			log.Printf("invalid duration for %s: %v, using fallback %s", key, err, fallback)
			return fallback
		}
		return d
	}
	return fallback
}

func boolEnv(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if val == "1" || val == "true" || val == "TRUE" {
			return true
		}
		if val == "0" || val == "false" || val == "FALSE" {
			return false
		}
		log.Printf("invalid bool for %s, using fallback %v", key, fallback)
	}
	return fallback
}

func intEnv(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		var parsed int
		if _, err := fmt.Sscanf(val, "%d", &parsed); err == nil {
			return parsed
		}
		log.Printf("invalid int for %s, using fallback %d", key, fallback)
	}
	return fallback
}
