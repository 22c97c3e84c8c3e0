package http

import (
	"account_admin_backend/platform/config"
	"account_admin_backend/platform/logger"
)

// ProviderInfo describes the identity provider backing the service, for
// health reporting.
type ProviderInfo interface {
	ProviderName() string
}

// App holds the fully initialized application dependencies.
// This is populated by main.go (the composition root) and passed to the router.
type App struct {
	// Config holds the router configuration (HTTP settings only).
	Config config.HTTPConfig
	// Logger is the structured logger.
	Logger *logger.Logger
	// Provider reports which identity provider is in use.
	Provider ProviderInfo
	// Modules contains all HTTP-facing domain modules.
	Modules []Module
}
