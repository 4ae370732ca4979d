package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
)

type Config struct {
	AppURL                 string
	Env                    string
	DatabaseDSN            string
	SnapshotPath           string
	SnapshotDebounceMS     int
	RedisAddr              string
	SessionTTLMinutes      int
	NotifyIntervalSeconds  int
	SendLatencyMS          int
	SendTimeoutSeconds     int
	RateLimit              int
	ShutdownTimeoutSeconds int
}

func Load() Config {
	appHost := getEnv("APP_HOST", "127.0.0.1")
	appPort := getEnv("APP_PORT", "8080")
	redisHost := getEnv("REDIS_HOST", "127.0.0.1")
	redisPort := getEnv("REDIS_PORT", "6379")

	cfg := Config{
		AppURL:                 fmt.Sprintf("%s:%s", appHost, appPort),
		Env:                    getEnv("APP_ENV", "dev"),
		DatabaseDSN:            getEnv("DATABASE_DSN", "nelo.db"),
		SnapshotPath:           getEnv("SNAPSHOT_PATH", "nelo_tasks.json"),
		SnapshotDebounceMS:     getEnvAsInt("SNAPSHOT_DEBOUNCE_MS", 500),
		RedisAddr:              fmt.Sprintf("%s:%s", redisHost, redisPort),
		SessionTTLMinutes:      getEnvAsInt("SESSION_TTL_MINUTES", 720),
		NotifyIntervalSeconds:  getEnvAsInt("NOTIFY_INTERVAL_SECONDS", 1200),
		SendLatencyMS:          getEnvAsInt("SEND_LATENCY_MS", 1500),
		SendTimeoutSeconds:     getEnvAsInt("SEND_TIMEOUT_SECONDS", 30),
		RateLimit:              getEnvAsInt("RATE_LIMIT_PER_MINUTE", 60),
		ShutdownTimeoutSeconds: getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 20),
	}

	validate(cfg)
	return cfg
}

func validate(cfg Config) {
	if cfg.AppURL == "" {
		log.Fatal("APP_URL must not be empty (e.g. 127.0.0.1:8080)")
	}
	if cfg.DatabaseDSN == "" {
		log.Fatal("DATABASE_DSN must not be empty")
	}
	if cfg.SnapshotDebounceMS <= 0 {
		log.Fatal("SNAPSHOT_DEBOUNCE_MS must be greater than 0")
	}
	if cfg.SessionTTLMinutes <= 0 {
		log.Fatal("SESSION_TTL_MINUTES must be greater than 0")
	}
	if cfg.NotifyIntervalSeconds <= 0 {
		log.Fatal("NOTIFY_INTERVAL_SECONDS must be greater than 0")
	}
	if cfg.SendTimeoutSeconds <= 0 {
		log.Fatal("SEND_TIMEOUT_SECONDS must be greater than 0")
	}
	if cfg.RateLimit <= 0 {
		log.Fatal("RATE_LIMIT_PER_MINUTE must be greater than 0")
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
