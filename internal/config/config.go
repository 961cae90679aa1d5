package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port string
	// SeedFile is empty to use the seed embedded in the binary.
	SeedFile string
	// SeedDatabaseURL, when set, takes precedence over SeedFile.
	SeedDatabaseURL string
	// RateLimitRPS of zero disables rate limiting.
	RateLimitRPS   float64
	RateLimitBurst int
}

func Load() Config {
	return Config{
		Port:            getEnv("PORT", "3000"),
		SeedFile:        getEnv("SEED_FILE", ""),
		SeedDatabaseURL: getEnv("SEED_DATABASE_URL", ""),
		RateLimitRPS:    getEnvFloat("RATE_LIMIT_RPS", 0),
		RateLimitBurst:  getEnvInt("RATE_LIMIT_BURST", 10),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return n
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if f, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return f
	}
	return def
}
