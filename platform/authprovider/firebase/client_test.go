package firebase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"account_admin_backend/platform/apperr"
)

type fakeUsers struct {
	calls []string
	err   error
}

func (f *fakeUsers) DeleteUser(_ context.Context, uid string) error {
	f.calls = append(f.calls, uid)
	return f.err
}

func TestDeleteUserForwardsUID(t *testing.T) {
	users := &fakeUsers{}
	provider := &Firebase{users: users}

	if err := provider.DeleteUser(context.Background(), "abc123"); err != nil {
		t.Fatalf("DeleteUser returned error: %v", err)
	}
	if len(users.calls) != 1 || users.calls[0] != "abc123" {
		t.Fatalf("unexpected calls: %#v", users.calls)
	}
}

func TestDeleteUserKeepsUpstreamText(t *testing.T) {
	upstream := errors.New("no user record found for the given identifier")
	provider := &Firebase{users: &fakeUsers{err: upstream}}

	err := provider.DeleteUser(context.Background(), "ghost")
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != upstream.Error() {
		t.Fatalf("expected verbatim upstream text, got %q", err.Error())
	}
	if !errors.Is(err, upstream) {
		t.Fatal("expected error to wrap the upstream cause")
	}
}

func TestDeleteUserClassifiesDeadline(t *testing.T) {
	upstream := fmt.Errorf("delete: %w", context.DeadlineExceeded)
	provider := &Firebase{users: &fakeUsers{err: upstream}}

	err := provider.DeleteUser(context.Background(), "slow")
	if !apperr.Is(err, apperr.KindUnavailable) {
		t.Fatalf("expected KindUnavailable, got %s", apperr.GetKind(err))
	}
}

func TestName(t *testing.T) {
	if (&Firebase{}).Name() != "firebase" {
		t.Fatal("unexpected provider name")
	}
}
