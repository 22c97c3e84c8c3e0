// Package zitadel implements authprovider.Provider on the ZITADEL user service v2.
package zitadel

import (
	"context"
	"fmt"
	"strconv"

	"github.com/zitadel/oidc/v3/pkg/oidc"
	"github.com/zitadel/zitadel-go/v3/pkg/client"
	"github.com/zitadel/zitadel-go/v3/pkg/client/zitadel/user/v2"
	zitadelsdk "github.com/zitadel/zitadel-go/v3/pkg/zitadel"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"account_admin_backend/platform/apperr"
	"account_admin_backend/platform/authprovider"
	"account_admin_backend/platform/config"
)

const providerName = "zitadel"

// userService is the subset of the generated user service client used here.
type userService interface {
	DeleteUser(ctx context.Context, in *user.DeleteUserRequest, opts ...grpc.CallOption) (*user.DeleteUserResponse, error)
}

// Zitadel deletes accounts through the ZITADEL management API.
type Zitadel struct {
	users userService
}

// New connects to ZITADEL using service-user key authentication.
func New(ctx context.Context, cfg config.ZitadelConfig) (*Zitadel, error) {
	opts := []zitadelsdk.Option{}
	if cfg.GetZitadelInsecure() {
		opts = append(opts, zitadelsdk.WithInsecure(cfg.GetZitadelPort()))
	}

	if cfg.GetZitadelPort() != "" {
		port, err := strconv.ParseUint(cfg.GetZitadelPort(), 10, 16)
		if err != nil {
			return nil, fmt.Errorf("invalid ZITADEL port %q: %w", cfg.GetZitadelPort(), err)
		}
		opts = append(opts, zitadelsdk.WithPort(uint16(port)))
	}

	c, err := client.New(ctx, zitadelsdk.New(cfg.GetZitadelDomain(), opts...),
		client.WithAuth(client.DefaultServiceUserAuthentication(cfg.GetZitadelKeyPath(), oidc.ScopeOpenID, client.ScopeZitadelAPI())),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create zitadel client: %w", err)
	}

	return &Zitadel{users: c.UserServiceV2()}, nil
}

// DeleteUser removes the ZITADEL user with the given id.
func (z *Zitadel) DeleteUser(ctx context.Context, uid string) error {
	_, err := z.users.DeleteUser(ctx, &user.DeleteUserRequest{
		UserId: uid,
	})
	if err != nil {
		return apperr.Upstream(classify(err), err)
	}

	return nil
}

// Name returns the provider identifier.
func (z *Zitadel) Name() string {
	return providerName
}

func classify(err error) apperr.Kind {
	switch status.Code(err) {
	case codes.NotFound:
		return apperr.KindNotFound
	case codes.PermissionDenied:
		return apperr.KindForbidden
	case codes.Unauthenticated:
		return apperr.KindUnauthorized
	case codes.InvalidArgument, codes.FailedPrecondition:
		return apperr.KindBadRequest
	case codes.Unavailable, codes.DeadlineExceeded:
		return apperr.KindUnavailable
	case codes.Internal:
		return apperr.KindInternal
	default:
		return apperr.KindUnknown
	}
}

var _ authprovider.Provider = (*Zitadel)(nil)
