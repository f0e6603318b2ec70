package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "GEMINI_API_KEY", "GEMINI_MODEL", "ADVISORY_MOCK", "ADVISORY_TIMEOUT", "RESEND_API_KEY", "NOTIFY_FROM", "MEMBERS_PER_PAGE"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	if cfg.Port != DefaultPort || cfg.GeminiModel != DefaultGeminiModel {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.GeminiAPIKey != "" || cfg.AdvisoryMock || cfg.AdvisoryTimeout != 0 {
		t.Fatalf("expected advisory disabled by default: %+v", cfg)
	}
	if cfg.MembersPerPage != DefaultMembersPerPage || cfg.NotifyFrom != DefaultNotifyFrom {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("GEMINI_API_KEY", " key ")
	t.Setenv("ADVISORY_MOCK", "Yes")
	t.Setenv("ADVISORY_TIMEOUT", "15s")
	t.Setenv("MEMBERS_PER_PAGE", "10")

	cfg := Load()
	if cfg.Port != "9090" || cfg.GeminiAPIKey != "key" || !cfg.AdvisoryMock {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.AdvisoryTimeout != 15*time.Second || cfg.MembersPerPage != 10 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("ADVISORY_TIMEOUT", "soon")
	t.Setenv("MEMBERS_PER_PAGE", "-3")

	cfg := Load()
	if cfg.AdvisoryTimeout != 0 || cfg.MembersPerPage != DefaultMembersPerPage {
		t.Fatalf("expected fallbacks, got %+v", cfg)
	}
}
