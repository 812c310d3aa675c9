package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the configuration settings for the stamping service.
//
// Fields:
// - Env: The current environment (e.g., local, development, production).
// - Port: The port for the HTTP API server.
// - ProviderType: The reverse-geocoding provider to use (google, nominatim).
// - APIKey: The API key for accessing external services (required for Google).
// - FontDir: Directory searched for the DejaVu caption fonts.
// - SlipTemplate: Path to the salary slip .docx template.
// - HTTPTimeout: Timeout applied to each external call (geocoding, map fetch).
type Config struct {
	Env          string        // Env is the current environment: local, development, production.
	Port         int           // Port is the HTTP API server port.
	ProviderType string        // ProviderType specifies which reverse-geocoding provider to use.
	APIKey       string        // The API key for accessing external services.
	FontDir      string        // Directory with the DejaVu TTF files; empty means built-in fonts.
	SlipTemplate string        // Path to the salary slip template document.
	HTTPTimeout  time.Duration // Per-call timeout for external services.
}

// MustLoad loads the configuration from environment variables (a local .env
// file is honored when present) and returns a Config struct. It panics on
// malformed values, matching the fail-fast startup contract.
func MustLoad() *Config {
	_ = godotenv.Load()

	port, err := strconv.Atoi(setDefaultEnv("STAMPCAM_PORT", "8080"))
	if err != nil {
		panic("failed to parse port for API server from configuration")
	}

	timeout, err := time.ParseDuration(setDefaultEnv("STAMPCAM_HTTP_TIMEOUT", "8s"))
	if err != nil {
		panic("failed to parse HTTP timeout from configuration")
	}

	return &Config{
		Env:          setDefaultEnv("STAMPCAM_ENV", "production"),
		Port:         port,
		ProviderType: setDefaultEnv("STAMPCAM_PROVIDER_TYPE", "nominatim"),
		APIKey:       os.Getenv("STAMPCAM_PROVIDER_KEY"),
		FontDir:      os.Getenv("STAMPCAM_FONT_DIR"),
		SlipTemplate: setDefaultEnv("STAMPCAM_SLIP_TEMPLATE", "templates/salaryslip.docx"),
		HTTPTimeout:  timeout,
	}
}

func setDefaultEnv(key, override string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		value = override
	}

	return value
}
