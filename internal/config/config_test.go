package config

import (
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, key := range []string{"PORT", "STORE_DRIVER", "STORE_PATH", "SEED_DATA", "JWT_EXPIRES_IN", "FIRM_NAME", "REPORT_CURRENCY"} {
			t.Setenv(key, "")
		}

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Port != "8080" {
			t.Errorf("expected port 8080, got %s", cfg.Port)
		}
		if cfg.StoreDriver != "sqlite" {
			t.Errorf("expected sqlite driver, got %s", cfg.StoreDriver)
		}
		if !cfg.SeedData {
			t.Error("expected seeding to default to true")
		}
		if cfg.JWTExpirationDur != 24*time.Hour {
			t.Errorf("expected 24h expiry, got %s", cfg.JWTExpirationDur)
		}
		if cfg.ReportCurrency != "INR" {
			t.Errorf("expected INR, got %s", cfg.ReportCurrency)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "memory")
		t.Setenv("SEED_DATA", "false")
		t.Setenv("JWT_EXPIRES_IN", "2h")
		t.Setenv("FIRM_NAME", "Acme Wealth")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.StoreDriver != "memory" {
			t.Errorf("expected memory driver, got %s", cfg.StoreDriver)
		}
		if cfg.SeedData {
			t.Error("expected seeding disabled")
		}
		if cfg.JWTExpirationDur != 2*time.Hour {
			t.Errorf("expected 2h expiry, got %s", cfg.JWTExpirationDur)
		}
		if cfg.FirmName != "Acme Wealth" {
			t.Errorf("expected firm override, got %s", cfg.FirmName)
		}
	})

	t.Run("invalid values fall back", func(t *testing.T) {
		t.Setenv("SEED_DATA", "sometimes")
		t.Setenv("JWT_EXPIRES_IN", "forever")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !cfg.SeedData {
			t.Error("expected fallback to seeding enabled")
		}
		if cfg.JWTExpirationDur != 24*time.Hour {
			t.Errorf("expected fallback to 24h, got %s", cfg.JWTExpirationDur)
		}
	})
}
