// Package authprovider defines the contract for managed identity providers
// whose administrative API owns the account records this service removes.
package authprovider

import "context"

// Provider is a long-lived handle to an identity provider's admin API.
// Implementations are created once at process start and shared by all calls.
type Provider interface {
	// DeleteUser removes the account identified by uid. Errors returned are
	// *apperr.Error values whose Error() text is the upstream message verbatim.
	DeleteUser(ctx context.Context, uid string) error
	// Name returns the provider identifier used in logs and metrics.
	Name() string
}
