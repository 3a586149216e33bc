package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings. Everything comes from the environment with
// sensible local-dev defaults; a .env file is honored when present.
type Config struct {
	Port        string
	ServiceName string
	GinMode     string
	// PeerBaseURL is the twin service this backend mirrors state with. Empty
	// disables peer sync entirely.
	PeerBaseURL string
}

func Load() *Config {
	// Missing .env is fine; env vars still apply.
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "8080"),
		ServiceName: getEnv("SERVICE_NAME", "food-delivery-backend"),
		GinMode:     getEnv("GIN_MODE", ""),
		PeerBaseURL: getEnv("PEER_BASE_URL", "http://localhost:8081"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
