// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Supported identity providers.
const (
	ProviderFirebase = "firebase"
	ProviderZitadel  = "zitadel"
	ProviderMemory   = "memory"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
	GetCallableTimeout() time.Duration
}

// MetricsConfig provides settings for the Prometheus listener.
type MetricsConfig interface {
	GetMetricsAddr() string
	IsMetricsEnabled() bool
}

// AuthProviderConfig selects the identity provider backing account administration.
type AuthProviderConfig interface {
	GetAuthProvider() string
}

// FirebaseConfig provides settings for the Firebase Admin SDK.
type FirebaseConfig interface {
	GetFirebaseProjectID() string
	GetFirebaseCredentialsFile() string
}

// ZitadelConfig provides settings for the ZITADEL management API.
type ZitadelConfig interface {
	GetZitadelDomain() string
	GetZitadelPort() string
	GetZitadelKeyPath() string
	GetZitadelInsecure() bool
}

// MemoryProviderConfig provides the seed for the in-process provider.
type MemoryProviderConfig interface {
	GetMemorySeedUIDs() []string
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env                     string
	HTTPAddr                string
	MetricsAddr             string
	CallableTimeout         time.Duration
	ShutdownTimeout         time.Duration
	CORSAllowAll            bool
	CORSOrigins             []string
	CORSAllowCreds          bool
	AuthProvider            string
	FirebaseProjectID       string
	FirebaseCredentialsFile string
	ZitadelDomain           string
	ZitadelPort             string
	ZitadelKeyPath          string
	ZitadelInsecure         bool
	MemorySeedUIDs          []string
}

// =============================================================================
// Interface Implementations
// =============================================================================

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string               { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool             { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string          { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool           { return c.CORSAllowCreds }
func (c *Config) GetCallableTimeout() time.Duration { return c.CallableTimeout }

// MetricsConfig implementation
func (c *Config) GetMetricsAddr() string { return c.MetricsAddr }
func (c *Config) IsMetricsEnabled() bool { return c.MetricsAddr != "" }

// AuthProviderConfig implementation
func (c *Config) GetAuthProvider() string { return c.AuthProvider }

// FirebaseConfig implementation
func (c *Config) GetFirebaseProjectID() string       { return c.FirebaseProjectID }
func (c *Config) GetFirebaseCredentialsFile() string { return c.FirebaseCredentialsFile }

// ZitadelConfig implementation
func (c *Config) GetZitadelDomain() string  { return c.ZitadelDomain }
func (c *Config) GetZitadelPort() string    { return c.ZitadelPort }
func (c *Config) GetZitadelKeyPath() string { return c.ZitadelKeyPath }
func (c *Config) GetZitadelInsecure() bool  { return c.ZitadelInsecure }

// MemoryProviderConfig implementation
func (c *Config) GetMemorySeedUIDs() []string { return c.MemorySeedUIDs }

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:4200"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	callableTimeout, err := parseDuration("CALLABLE_TIMEOUT", "60s")
	if err != nil {
		return nil, err
	}
	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Env:                     getEnv("APP_ENV", "development"),
		HTTPAddr:                getEnv("HTTP_ADDR", ":8080"),
		MetricsAddr:             getEnv("METRICS_ADDR", ":9090"),
		CallableTimeout:         callableTimeout,
		ShutdownTimeout:         shutdownTimeout,
		CORSAllowAll:            corsAllowAll,
		CORSOrigins:             corsOrigins,
		CORSAllowCreds:          strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "false"), "true"),
		AuthProvider:            strings.ToLower(strings.TrimSpace(getEnv("AUTH_PROVIDER", ProviderFirebase))),
		FirebaseProjectID:       getEnv("FIREBASE_PROJECT_ID", ""),
		FirebaseCredentialsFile: getEnv("FIREBASE_CREDENTIALS_FILE", ""),
		ZitadelDomain:           getEnv("ZITADEL_DOMAIN", ""),
		ZitadelPort:             getEnv("ZITADEL_PORT", ""),
		ZitadelKeyPath:          getEnv("ZITADEL_KEY_PATH", ""),
		ZitadelInsecure:         strings.EqualFold(getEnv("ZITADEL_INSECURE", "false"), "true"),
		MemorySeedUIDs:          splitCSV(getEnv("MEMORY_SEED_UIDS", "")),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.CallableTimeout <= 0 {
		return fmt.Errorf("CALLABLE_TIMEOUT must be a positive duration")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be a positive duration")
	}
	if c.CORSAllowAll && c.CORSAllowCreds {
		return fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}

	switch c.AuthProvider {
	case ProviderFirebase, ProviderMemory:
	case ProviderZitadel:
		if c.ZitadelDomain == "" || c.ZitadelKeyPath == "" {
			return fmt.Errorf("ZITADEL_DOMAIN and ZITADEL_KEY_PATH are required when AUTH_PROVIDER is zitadel")
		}
	default:
		return fmt.Errorf("unsupported AUTH_PROVIDER %q", c.AuthProvider)
	}

	return nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func parseDuration(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
