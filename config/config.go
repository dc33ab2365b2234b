package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port         string
	DBPath       string
	StaticDir    string
	GeminiAPIKey string
	GeminiModel  string
	EmbedModel   string
	LogLevel     string
	LogDev       bool
	AuthStrict   bool
	DemoUsername string
	DefaultLang  string
	NATSURL      string

	KBAllowedDomains []string
	KBMaxBytes       int
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}
	cfg := FromEnv()
	log.Printf("[cfg] %s", cfg)
	return cfg
}

// FromEnv builds the config from the process environment only.
func FromEnv() AppConfig {
	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	maxBytes, err := strconv.Atoi(get("KB_MAX_BYTES_PER_PAGE", "1500000"))
	if err != nil || maxBytes <= 0 {
		maxBytes = 1500000
	}
	var domains []string
	for _, h := range strings.Split(get("KB_ALLOWED_DOMAINS", ""), ",") {
		h = strings.ToLower(strings.TrimSpace(h))
		if h != "" {
			domains = append(domains, h)
		}
	}
	return AppConfig{
		Port:             get("PORT", "8080"),
		DBPath:           get("DB_PATH", "agriai.db"),
		StaticDir:        get("STATIC_DIR", "static"),
		GeminiAPIKey:     get("GEMINI_API_KEY", ""),
		GeminiModel:      get("GEMINI_MODEL", "gemini-2.0-flash-exp"),
		EmbedModel:       get("GEMINI_EMBED_MODEL", "gemini-embedding-001"),
		LogLevel:         get("LOG_LEVEL", "info"),
		LogDev:           get("LOG_DEV", "false") == "true",
		AuthStrict:       get("AUTH_STRICT", "false") == "true",
		DemoUsername:     get("DEMO_USERNAME", "demo-user"),
		DefaultLang:      get("DEFAULT_LANG", "ru"),
		NATSURL:          get("NATS_URL", ""),
		KBAllowedDomains: domains,
		KBMaxBytes:       maxBytes,
	}
}

// String renders the config for logs with the API key redacted.
func (c AppConfig) String() string {
	redacted := c
	if redacted.GeminiAPIKey != "" {
		redacted.GeminiAPIKey = "***"
	}
	type plain AppConfig
	return fmt.Sprintf("%+v", plain(redacted))
}
