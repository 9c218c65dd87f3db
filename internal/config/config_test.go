package config

import "testing"

// setRequired pins the whole environment so tests do not depend on
// whatever the host shell exports.
func setRequired(t *testing.T) {
	t.Setenv("AI_VISION_API_KEY", "test-key")
	t.Setenv("AI_VISION_PROVIDER", "")
	t.Setenv("AI_VISION_PROVIDER_URL", "")
	t.Setenv("AI_VISION_MODEL", "")
	t.Setenv("BACKEND_HOST", "")
	t.Setenv("BACKEND_PORT", "")
	t.Setenv("LOG_LEVEL", "")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, warn, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if warn != nil {
		t.Fatalf("unexpected warning: %v", warn)
	}
	if cfg.Addr() != "0.0.0.0:4000" {
		t.Fatalf("expected default addr, got %s", cfg.Addr())
	}
	if cfg.VisionProvider != ProviderOpenAI {
		t.Fatalf("expected openai default provider, got %s", cfg.VisionProvider)
	}
	if cfg.VisionModel != "gpt-4o-mini" {
		t.Fatalf("expected default model, got %s", cfg.VisionModel)
	}
	if cfg.VisionProviderURL != "https://api.openai.com/v1" {
		t.Fatalf("expected default provider URL, got %s", cfg.VisionProviderURL)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("expected info log level, got %s", cfg.LogLevel)
	}
}

func TestLoadMissingAPIKey(t *testing.T) {
	setRequired(t)
	t.Setenv("AI_VISION_API_KEY", "")

	if _, _, err := Load(); err == nil {
		t.Fatal("expected error without AI_VISION_API_KEY")
	}
}

func TestLoadInvalidPortFallsBack(t *testing.T) {
	for _, raw := range []string{"not-a-number", "-1", "0"} {
		setRequired(t)
		t.Setenv("BACKEND_PORT", raw)

		cfg, warn, err := Load()
		if err != nil {
			t.Fatalf("port %q: unexpected error: %v", raw, err)
		}
		if warn == nil {
			t.Fatalf("port %q: expected a fallback warning", raw)
		}
		if cfg.BackendPort != 4000 {
			t.Fatalf("port %q: expected fallback 4000, got %d", raw, cfg.BackendPort)
		}
	}
}

func TestLoadValidPort(t *testing.T) {
	setRequired(t)
	t.Setenv("BACKEND_PORT", "8123")
	t.Setenv("BACKEND_HOST", "127.0.0.1")

	cfg, warn, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if warn != nil {
		t.Fatalf("unexpected warning: %v", warn)
	}
	if cfg.Addr() != "127.0.0.1:8123" {
		t.Fatalf("got addr %s", cfg.Addr())
	}
}

func TestLoadGeminiDefaults(t *testing.T) {
	setRequired(t)
	t.Setenv("AI_VISION_PROVIDER", "gemini")

	cfg, _, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.VisionModel != "gemini-2.5-flash" {
		t.Fatalf("expected gemini default model, got %s", cfg.VisionModel)
	}
}

func TestLoadRejectsUnknownProvider(t *testing.T) {
	setRequired(t)
	t.Setenv("AI_VISION_PROVIDER", "skynet")

	if _, _, err := Load(); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestLoadRejectsUnknownLogLevel(t *testing.T) {
	setRequired(t)
	t.Setenv("LOG_LEVEL", "loud")

	if _, _, err := Load(); err == nil {
		t.Fatal("expected error for unknown log level")
	}
}
