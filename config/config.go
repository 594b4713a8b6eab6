package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime settings, read once from the environment.
type Config struct {
	Addr            string
	ClientURL       string
	RefreshInterval time.Duration

	FirebaseCredentials string // base64 service account JSON; empty = in-memory store
	OpenAIKey           string
	GNewsKey            string
	FirmsMapKey         string
	ACLEDKey            string
	ACLEDEmail          string
	MapsKey             string
}

// Load reads configuration from the environment with defaults. godotenv
// is expected to have been loaded by main before this runs.
func Load() Config {
	return Config{
		Addr:                getEnv("ADDR", ":8080"),
		ClientURL:           getEnv("CLIENT_URL", "*"),
		RefreshInterval:     time.Duration(getEnvInt("REFRESH_INTERVAL_MINUTES", 10)) * time.Minute,
		FirebaseCredentials: os.Getenv("FIREBASE_CREDENTIALS"),
		OpenAIKey:           os.Getenv("OPENAI_API_KEY"),
		GNewsKey:            os.Getenv("GNEWS_API_KEY"),
		FirmsMapKey:         os.Getenv("FIRMS_MAP_KEY"),
		ACLEDKey:            os.Getenv("ACLED_API_KEY"),
		ACLEDEmail:          os.Getenv("ACLED_EMAIL"),
		MapsKey:             os.Getenv("MAPS_CREDENTIALS"),
	}
}

func getEnv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func getEnvInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
