// Package config loads runtime configuration from environment variables.
package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the values the server needs at startup.  Required variables
// are enforced by must(); missing values halt the process with a fatal log.
type Config struct {
	Env          string // application environment (dev, prod)
	Port         string // HTTP port to listen on
	DBUser       string // database username
	DBPass       string // database password (optional)
	DBHost       string // database host
	DBPort       string // database port
	DBName       string // database name
	JWTSecret    string // secret used to sign and verify caller tokens
	TokenTTLMin  int    // lifetime of minted caller tokens in minutes
	AMQPURL      string // RabbitMQ URL for ticket events (optional)
	ConsumerOn   bool   // run the ticket.created log consumer in-process
	LogDir       string // directory the consumer writes ticket logs to
}

// Load reads configuration from the environment.
func Load() Config {
	return Config{
		Env:         getenv("APP_ENV", "dev"),
		Port:        must("APP_PORT"),
		DBUser:      must("DB_USER"),
		DBPass:      os.Getenv("DB_PASS"),
		DBHost:      must("DB_HOST"),
		DBPort:      must("DB_PORT"),
		DBName:      must("DB_NAME"),
		JWTSecret:   must("JWT_SECRET"),
		TokenTTLMin: envInt("TOKEN_TTL_MIN", 60),
		AMQPURL:     os.Getenv("RABBITMQ_URL"),
		ConsumerOn:  envBool("TICKET_CONSUMER_ENABLED", true),
		LogDir:      getenv("LOG_DIR", "logs"),
	}
}

// must retrieves a required environment variable or exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func envBool(key string, def bool) bool {
	v := strings.ToLower(os.Getenv(key))
	switch v {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return def
}

func envDur(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
