package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the monitor
type Config struct {
	// Display
	PageSize int
	NoColor  bool

	// Backend selection: auto, gopsutil, tasklist, procfs or ps. The
	// default "auto" lets the probe decide.
	Backend string

	// Optional snapshot sections
	DockerEnabled   bool
	ServicesEnabled bool

	// Logging
	LogLevel string

	EnvFile string
}

// Load reads configuration from environment variables, preferring a .env
// file when one is present.
func Load() (*Config, error) {
	envFile := getEnvFile()

	// Load .env file if it exists
	_ = godotenv.Load(envFile)

	cfg := &Config{
		PageSize:        getEnvInt("PAGE_SIZE", 50),
		NoColor:         getEnvBool("NO_COLOR", false),
		Backend:         getEnv("PSDS_BACKEND", "auto"),
		DockerEnabled:   getEnvBool("DOCKER_ENABLED", true),
		ServicesEnabled: getEnvBool("SERVICES_ENABLED", true),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		EnvFile:         envFile,
	}

	if cfg.PageSize <= 0 {
		cfg.PageSize = 50
	}

	return cfg, nil
}

// getEnvFile returns the path to the .env file
func getEnvFile() string {
	if envFile := os.Getenv("ENV_FILE"); envFile != "" {
		return envFile
	}

	// Try to find .env in current directory or executable directory
	if _, err := os.Stat(".env"); err == nil {
		return ".env"
	}

	exe, err := os.Executable()
	if err == nil {
		dir := strings.TrimSuffix(exe, "/psdsmon")
		envPath := dir + "/.env"
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	return ".env"
}

// LoadWithDefaults loads config with defaults for testing
func LoadWithDefaults() *Config {
	return &Config{
		PageSize:        50,
		NoColor:         false,
		Backend:         "auto",
		DockerEnabled:   true,
		ServicesEnabled: true,
		LogLevel:        "info",
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
