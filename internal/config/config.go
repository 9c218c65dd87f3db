package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"

	defaultProviderURL = "https://api.openai.com/v1"
	defaultOpenAIModel = "gpt-4o-mini"
	defaultGeminiModel = "gemini-2.5-flash"
	defaultHost        = "0.0.0.0"
	defaultPort        = 4000
)

// Config holds everything the process reads from the environment.
// Validation happens once in Load; nothing else touches os.Getenv.
type Config struct {
	VisionAPIKey      string
	VisionProviderURL string
	VisionProvider    string
	VisionModel       string

	BackendHost string
	BackendPort int

	LogLevel string
}

// PortWarning is set by Load when BACKEND_PORT was present but unusable
// and the default was applied. The caller logs it; Load stays silent.
type PortWarning struct {
	Raw string
}

func (w *PortWarning) Error() string {
	return fmt.Sprintf("invalid BACKEND_PORT %q, falling back to %d", w.Raw, defaultPort)
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads and validates the environment. The returned warning is
// non-nil when a recoverable misconfiguration was papered over with a
// default; the error is non-nil when the process cannot run at all.
func Load() (*Config, *PortWarning, error) {
	cfg := &Config{
		VisionAPIKey:      os.Getenv("AI_VISION_API_KEY"),
		VisionProviderURL: getEnv("AI_VISION_PROVIDER_URL", defaultProviderURL),
		VisionProvider:    getEnv("AI_VISION_PROVIDER", ProviderOpenAI),
		VisionModel:       os.Getenv("AI_VISION_MODEL"),
		BackendHost:       getEnv("BACKEND_HOST", defaultHost),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
	}

	switch cfg.VisionProvider {
	case ProviderOpenAI:
		if cfg.VisionModel == "" {
			cfg.VisionModel = defaultOpenAIModel
		}
	case ProviderGemini:
		if cfg.VisionModel == "" {
			cfg.VisionModel = defaultGeminiModel
		}
	default:
		return nil, nil, fmt.Errorf("unknown AI_VISION_PROVIDER %q", cfg.VisionProvider)
	}

	if cfg.VisionAPIKey == "" {
		return nil, nil, fmt.Errorf("AI_VISION_API_KEY is not set")
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, nil, fmt.Errorf("unknown LOG_LEVEL %q", cfg.LogLevel)
	}

	var warn *PortWarning
	cfg.BackendPort = defaultPort
	if raw := os.Getenv("BACKEND_PORT"); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil || port <= 0 {
			warn = &PortWarning{Raw: raw}
		} else {
			cfg.BackendPort = port
		}
	}

	return cfg, warn, nil
}

// Addr is the host:port the HTTP server binds to.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.BackendHost, c.BackendPort)
}
