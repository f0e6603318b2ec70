package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultPort           = "8080"
	DefaultGeminiModel    = "gemini-2.0-flash"
	DefaultNotifyFrom     = "Gestão Igreja <escalas@gestaoigreja.app>"
	DefaultMembersPerPage = 5
)

// Config is read once at start-up. Every external integration is optional: a blank
// key leaves the matching component disabled rather than failing the boot.
type Config struct {
	Port            string
	GinMode         string
	GeminiAPIKey    string
	GeminiModel     string
	AdvisoryMock    bool
	AdvisoryTimeout time.Duration
	ResendAPIKey    string
	NotifyFrom      string
	MembersPerPage  int
}

// Load reads configuration from environment variables.
//
// Supported env vars:
//   - PORT (default: 8080)
//   - GIN_MODE (optional)
//   - GEMINI_API_KEY (optional; advisory answers with fallbacks without it)
//   - GEMINI_MODEL (default: gemini-2.0-flash)
//   - ADVISORY_MOCK (optional; canned advisory text)
//   - ADVISORY_TIMEOUT (optional; e.g. 15s, 0 disables)
//   - RESEND_API_KEY (optional; roster e-mails are only logged without it)
//   - NOTIFY_FROM (sender of roster e-mails)
//   - MEMBERS_PER_PAGE (default: 5)
func Load() Config {
	return Config{
		Port:            getenvDefault("PORT", DefaultPort),
		GinMode:         os.Getenv("GIN_MODE"),
		GeminiAPIKey:    strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		GeminiModel:     getenvDefault("GEMINI_MODEL", DefaultGeminiModel),
		AdvisoryMock:    getenvBool("ADVISORY_MOCK"),
		AdvisoryTimeout: getenvDuration("ADVISORY_TIMEOUT", 0),
		ResendAPIKey:    strings.TrimSpace(os.Getenv("RESEND_API_KEY")),
		NotifyFrom:      getenvDefault("NOTIFY_FROM", DefaultNotifyFrom),
		MembersPerPage:  getenvInt("MEMBERS_PER_PAGE", DefaultMembersPerPage),
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("[config] invalid %s=%q, using %d", key, v, def)
		return def
	}
	return n
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		log.Printf("[config] invalid %s=%q, using %s", key, v, def)
		return def
	}
	return d
}
