// Package accounts provides the account administration bounded context module.
// It exposes callable operations that act on accounts owned by the
// configured identity provider.
package accounts

import (
	"account_admin_backend/internal/accounts/handler"
	"account_admin_backend/internal/accounts/service"
	apphttp "account_admin_backend/internal/http"
	"account_admin_backend/platform/authprovider"
	"account_admin_backend/platform/logger"
	"account_admin_backend/platform/metrics"
	"account_admin_backend/platform/validator"
)

// Module is the accounts bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the accounts module with all its dependencies.
func NewModule(provider authprovider.Provider, val *validator.Validator, rec metrics.Recorder, log *logger.Logger) *Module {
	svc := service.New(provider, val, rec, log)
	h := handler.New(svc)

	return &Module{
		handler: h,
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "accounts"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts the account callables on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Callable.POST("/deleteUser", m.handler.DeleteUser)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
