package config

import (
	"strings"
	"testing"
	"time"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_ADDR", ":8080")
	t.Setenv("METRICS_ADDR", "")
	t.Setenv("CALLABLE_TIMEOUT", "60s")
	t.Setenv("SHUTDOWN_TIMEOUT", "10s")
	t.Setenv("CORS_ORIGINS", "http://localhost:4200")
	t.Setenv("CORS_ALLOW_ALL", "false")
	t.Setenv("CORS_ALLOW_CREDENTIALS", "false")
	t.Setenv("AUTH_PROVIDER", "memory")
	t.Setenv("ZITADEL_DOMAIN", "")
	t.Setenv("ZITADEL_KEY_PATH", "")
	t.Setenv("MEMORY_SEED_UIDS", "")
}

func TestLoadDefaults(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("MEMORY_SEED_UIDS", "abc123, ghost ,,")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.GetCallableTimeout() != 60*time.Second {
		t.Fatalf("expected 60s callable timeout, got %s", cfg.GetCallableTimeout())
	}
	if cfg.IsMetricsEnabled() {
		t.Fatal("expected metrics to be disabled with an empty METRICS_ADDR")
	}
	seeds := cfg.GetMemorySeedUIDs()
	if len(seeds) != 2 || seeds[0] != "abc123" || seeds[1] != "ghost" {
		t.Fatalf("unexpected seed uids: %#v", seeds)
	}
}

func TestLoadNormalizesProviderName(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("AUTH_PROVIDER", " Firebase ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.GetAuthProvider() != ProviderFirebase {
		t.Fatalf("expected firebase provider, got %q", cfg.GetAuthProvider())
	}
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	cases := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "unknown provider",
			env:     map[string]string{"AUTH_PROVIDER": "okta"},
			wantErr: "unsupported AUTH_PROVIDER",
		},
		{
			name:    "zitadel without key",
			env:     map[string]string{"AUTH_PROVIDER": "zitadel", "ZITADEL_DOMAIN": "auth.example.com"},
			wantErr: "ZITADEL_DOMAIN and ZITADEL_KEY_PATH are required",
		},
		{
			name:    "bad timeout",
			env:     map[string]string{"CALLABLE_TIMEOUT": "soon"},
			wantErr: `CALLABLE_TIMEOUT: time: invalid duration "soon"`,
		},
		{
			name:    "bad shutdown timeout",
			env:     map[string]string{"SHUTDOWN_TIMEOUT": "abc"},
			wantErr: `SHUTDOWN_TIMEOUT: time: invalid duration "abc"`,
		},
		{
			name:    "zero timeout",
			env:     map[string]string{"CALLABLE_TIMEOUT": "0s"},
			wantErr: "CALLABLE_TIMEOUT must be a positive duration",
		},
		{
			name:    "wildcard cors with credentials",
			env:     map[string]string{"CORS_ORIGINS": "*", "CORS_ALLOW_CREDENTIALS": "true"},
			wantErr: "CORS_ALLOW_CREDENTIALS",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			setBaseEnv(t)
			for key, value := range tc.env {
				t.Setenv(key, value)
			}

			_, err := Load()
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestLoadAcceptsCompleteZitadelSettings(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("AUTH_PROVIDER", "zitadel")
	t.Setenv("ZITADEL_DOMAIN", "auth.example.com")
	t.Setenv("ZITADEL_KEY_PATH", "/secrets/key.json")
	t.Setenv("ZITADEL_INSECURE", "TRUE")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !cfg.GetZitadelInsecure() || cfg.GetZitadelKeyPath() != "/secrets/key.json" {
		t.Fatalf("unexpected zitadel settings: %+v", cfg)
	}
}
