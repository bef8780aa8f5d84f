package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"laneboard/internal/tracker"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// AppConfig holds the complete application configuration.
type AppConfig struct {
	Tracker      tracker.Config
	ListenAddr   string
	PollInterval time.Duration
	DataPath     string
	LogDir       string
}

// Load loads the configuration from .env files and environment variables.
func Load() (*AppConfig, error) {
	// 1. Try to load from the executable's directory first
	exePath, err := os.Executable()
	exeDir := ""
	if err == nil {
		exeDir = filepath.Dir(exePath)
		envPath := filepath.Join(exeDir, ".env")
		if err := godotenv.Load(envPath); err == nil {
			log.Debug().Str("path", envPath).Msg("Loaded configuration from binary directory")
		}
	}

	// 2. Fallback to current working directory (useful for development/go run)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found in working directory, relying on environment variables or binary-relative .env")
	}

	// 3. Resolve data paths
	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		if exeDir != "" {
			dataPath = exeDir
		} else {
			dataPath = "."
		}
	}

	logDir := filepath.Join(dataPath, "logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.Warn().Err(err).Str("path", logDir).Msg("Failed to create log directory")
	}

	delaySecs, _ := strconv.Atoi(getEnv("TRACKER_REQUEST_DELAY_SECONDS", "2"))
	pollSecs, _ := strconv.Atoi(getEnv("POLL_INTERVAL_SECONDS", "30"))
	if pollSecs <= 0 {
		pollSecs = 30
	}

	cfg := &AppConfig{
		Tracker: tracker.Config{
			BaseURL:      getEnv("TRACKER_URL", ""),
			Token:        getEnv("TRACKER_TOKEN", ""),
			RequestDelay: time.Duration(delaySecs) * time.Second,
		},
		ListenAddr:   getEnv("LISTEN_ADDR", ":8089"),
		PollInterval: time.Duration(pollSecs) * time.Second,
		DataPath:     dataPath,
		LogDir:       logDir,
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
