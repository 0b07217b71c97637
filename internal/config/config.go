package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// FallbackJWTSecret is used when JWT_SECRET is unset. Kept for parity with
// deployments that never configured a key; a warning is logged because any
// client that knows the fallback can mint valid tokens.
const FallbackJWTSecret = "your_secret_key"

type Config struct {
	Port       string
	DBDSN      string
	LogFile    string
	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int

	// Seed admin account, created on startup if absent.
	AdminEmail    string
	AdminName     string
	AdminPassword string
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "inkwell.db" // sqlite file in project root
	}
	logFile := os.Getenv("LOG_FILE")

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = FallbackJWTSecret
		log.Println("[warn] JWT_SECRET not set; using insecure fallback key")
	}

	ttl := time.Hour
	if v := os.Getenv("TOKEN_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			ttl = d
		}
	}

	cost := 10
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= bcrypt.MinCost && n <= bcrypt.MaxCost {
			cost = n
		}
	}

	cfg := Config{
		Port:          port,
		DBDSN:         dsn,
		LogFile:       logFile,
		JWTSecret:     secret,
		TokenTTL:      ttl,
		BcryptCost:    cost,
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@inkwell.test"),
		AdminName:     getEnv("ADMIN_NAME", "Admin"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}
	log.Printf("[config] PORT=%s DB_DSN=%s TOKEN_TTL=%s BCRYPT_COST=%d", cfg.Port, cfg.DBDSN, cfg.TokenTTL, cfg.BcryptCost)
	return cfg
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
