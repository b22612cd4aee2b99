// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package config

import (
	"strings"
	"testing"
)

// TestLoad_Defaults verifies that Load returns sensible development defaults
// when no environment variables are set.
func TestLoad_Defaults(t *testing.T) {
	envVars := []string{
		"APP_HOST", "APP_PORT", "APP_ENV",
		"API_BASE_URL",
		"VALKEY_HOST", "VALKEY_PORT", "VALKEY_PASSWORD",
		"DEFAULT_LANG",
	}
	// envOrDefault treats empty the same as unset, so clearing to "" suffices.
	for _, key := range envVars {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	check := func(field, got, want string) {
		t.Helper()
		if got != want {
			t.Errorf("%s: got %q, want %q", field, got, want)
		}
	}

	check("Host", cfg.Host, "0.0.0.0")
	check("Port", cfg.Port, "8080")
	check("Env", cfg.Env, "development")
	check("APIBaseURL", cfg.APIBaseURL, "http://localhost:5000/api")
	check("ValkeyHost", cfg.ValkeyHost, "localhost")
	check("ValkeyPort", cfg.ValkeyPort, "6379")
	check("ValkeyPassword", cfg.ValkeyPassword, "")
	check("DefaultLang", cfg.DefaultLang, "en")

	if !cfg.IsDev() {
		t.Error("IsDev: expected true for default env")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_HOST", "127.0.0.1")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("APP_ENV", "testing")
	t.Setenv("API_BASE_URL", "https://forum.example.com/api")
	t.Setenv("DEFAULT_LANG", "pt")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.Addr() != "127.0.0.1:9090" {
		t.Errorf("Addr: got %q", cfg.Addr())
	}
	if cfg.APIBaseURL != "https://forum.example.com/api" {
		t.Errorf("APIBaseURL: got %q", cfg.APIBaseURL)
	}
	if cfg.DefaultLang != "pt" {
		t.Errorf("DefaultLang: got %q", cfg.DefaultLang)
	}
	if cfg.IsDev() {
		t.Error("IsDev: expected false for testing env")
	}
}

func TestLoad_ProductionRequiresAPIBaseURL(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("API_BASE_URL", "")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error when API_BASE_URL is unset in production")
	}
	if !strings.Contains(err.Error(), "API_BASE_URL") {
		t.Errorf("error should mention API_BASE_URL, got: %v", err)
	}
}

func TestLoad_RejectsUnknownLanguage(t *testing.T) {
	t.Setenv("DEFAULT_LANG", "fr")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for unsupported DEFAULT_LANG")
	}
}

func TestValkeyAddr(t *testing.T) {
	t.Setenv("VALKEY_HOST", "cache.internal")
	t.Setenv("VALKEY_PORT", "6380")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.ValkeyAddr() != "cache.internal:6380" {
		t.Errorf("ValkeyAddr: got %q", cfg.ValkeyAddr())
	}
}
