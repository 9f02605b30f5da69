package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	AppURL                 string
	DatabaseDSN            string
	OwnerID                string
	RateLimit              int
	ShutdownTimeoutSeconds int
	RedisEnabled           bool
	RedisAddr              string
	RedisKeyPrefix         string
	StatsCacheTTLSeconds   int
	ShareCodeAttempts      int
	SeedFile               string
}

func Load() Config {
	appHost := getEnv("APP_HOST", "127.0.0.1")
	appPort := getEnv("APP_PORT", "8080")
	redisHost := getEnv("REDIS_HOST", "127.0.0.1")
	redisPort := getEnv("REDIS_PORT", "6379")

	cfg := Config{
		AppURL:                 fmt.Sprintf("%s:%s", appHost, appPort),
		DatabaseDSN:            getEnv("DATABASE_DSN", "timeflow.db"),
		OwnerID:                getEnv("OWNER_ID", "1"),
		RateLimit:              getEnvAsInt("RATE_LIMIT_PER_MINUTE", 120),
		ShutdownTimeoutSeconds: getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 20),
		RedisEnabled:           getEnvAsBool("REDIS_ENABLED", false),
		RedisAddr:              fmt.Sprintf("%s:%s", redisHost, redisPort),
		RedisKeyPrefix:         getEnv("REDIS_KEY_PREFIX", "timeflow:stats"),
		StatsCacheTTLSeconds:   getEnvAsInt("STATS_CACHE_TTL_SECONDS", 300),
		ShareCodeAttempts:      getEnvAsInt("SHARE_CODE_ATTEMPTS", 5),
		SeedFile:               getEnv("SEED_FILE", ""),
	}

	validate(cfg)
	return cfg
}

func validate(cfg Config) {
	if cfg.AppURL == "" {
		log.Fatal("APP_HOST/APP_PORT must not be empty (e.g. 127.0.0.1:8080)")
	}
	if cfg.DatabaseDSN == "" {
		log.Fatal("DATABASE_DSN must not be empty")
	}
	if strings.TrimSpace(cfg.OwnerID) == "" {
		log.Fatal("OWNER_ID must not be empty")
	}
	if cfg.RateLimit <= 0 {
		log.Fatal("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}
	if cfg.StatsCacheTTLSeconds <= 0 {
		log.Fatal("STATS_CACHE_TTL_SECONDS must be greater than 0")
	}
	if cfg.ShareCodeAttempts <= 0 {
		log.Fatal("SHARE_CODE_ATTEMPTS must be greater than 0")
	}
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("invalid integer value for %s", key)
		}
		return i
	}
	return defaultVal
}

func getEnvAsBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Fatalf("invalid boolean value for %s", key)
		}
		return b
	}
	return defaultVal
}
