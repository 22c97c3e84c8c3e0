// Package memory provides an in-process identity provider for local
// development and tests. Accounts live only as long as the process.
package memory

import (
	"context"
	"sync"

	"account_admin_backend/platform/apperr"
	"account_admin_backend/platform/authprovider"
)

const providerName = "memory"

// errNoUserRecord matches the text Firebase reports for unknown uids.
const errNoUserRecord = "no user record"

// Provider is a mutex-guarded set of account ids.
type Provider struct {
	mu    sync.Mutex
	users map[string]struct{}
}

// New creates a provider seeded with the given uids.
func New(uids ...string) *Provider {
	p := &Provider{users: make(map[string]struct{}, len(uids))}
	for _, uid := range uids {
		p.Add(uid)
	}
	return p
}

// Add registers an account.
func (p *Provider) Add(uid string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.users[uid] = struct{}{}
}

// Exists reports whether the account is present.
func (p *Provider) Exists(uid string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.users[uid]
	return ok
}

// Len returns the number of accounts.
func (p *Provider) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.users)
}

// DeleteUser removes the account, failing with a not found error if absent.
func (p *Provider) DeleteUser(ctx context.Context, uid string) error {
	if err := ctx.Err(); err != nil {
		return apperr.Upstream(apperr.KindUnavailable, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.users[uid]; !ok {
		return apperr.NotFound(errNoUserRecord)
	}
	delete(p.users, uid)
	return nil
}

// Name returns the provider identifier.
func (p *Provider) Name() string {
	return providerName
}

var _ authprovider.Provider = (*Provider)(nil)
