package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// AppConfig holds the complete application configuration.
type AppConfig struct {
	// DataPath is the root directory for logs and the analytics database.
	DataPath string
	// DataFile is the JSON analytics database path.
	DataFile string
	LogDir   string
	// Port is the HTTP listen port for the dashboard API.
	Port int
	// DatabaseURL enables the Postgres import archive when non-empty.
	DatabaseURL string
	// OpenBrowser opens the dashboard URL once the server is listening.
	OpenBrowser bool
}

// Load loads the configuration from .env files and environment variables.
// The binary's directory takes priority over the working directory so that a
// deployed instance keeps its data next to the executable.
func Load() (*AppConfig, error) {
	exePath, err := os.Executable()
	exeDir := ""
	if err == nil {
		exeDir = filepath.Dir(exePath)
		envPath := filepath.Join(exeDir, ".env")
		if err := godotenv.Load(envPath); err == nil {
			log.Debug().Str("path", envPath).Msg("Loaded configuration from binary directory")
		}
	}
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found in working directory, relying on environment variables or binary-relative .env")
	}

	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		if exeDir != "" {
			dataPath = exeDir
		} else {
			dataPath = "."
		}
	}

	dataFile := getEnv("DATA_FILE", filepath.Join(dataPath, "data", "analytics-db.json"))
	logDir := filepath.Join(dataPath, "logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.Warn().Err(err).Str("path", logDir).Msg("Failed to create log directory")
	}

	port, err := strconv.Atoi(getEnv("PORT", "4000"))
	if err != nil || port <= 0 {
		log.Warn().Str("port", os.Getenv("PORT")).Msg("Invalid PORT, falling back to 4000")
		port = 4000
	}

	cfg := &AppConfig{
		DataPath:    dataPath,
		DataFile:    dataFile,
		LogDir:      logDir,
		Port:        port,
		DatabaseURL: getEnv("DATABASE_URL", ""),
		OpenBrowser: getEnvBool("OPEN_BROWSER", false),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
