// Package firebase implements authprovider.Provider on the Firebase Admin SDK.
package firebase

import (
	"context"
	"errors"
	"fmt"

	firebasesdk "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/errorutils"
	"google.golang.org/api/option"

	"account_admin_backend/platform/apperr"
	"account_admin_backend/platform/authprovider"
	"account_admin_backend/platform/config"
)

const providerName = "firebase"

// userDeleter is the subset of *auth.Client used here.
type userDeleter interface {
	DeleteUser(ctx context.Context, uid string) error
}

// Firebase deletes accounts through Firebase Authentication.
type Firebase struct {
	users userDeleter
}

// New initializes the Firebase app and its Auth client. Credentials come from
// the configured service account file, or application default credentials.
func New(ctx context.Context, cfg config.FirebaseConfig) (*Firebase, error) {
	var opts []option.ClientOption
	if path := cfg.GetFirebaseCredentialsFile(); path != "" {
		opts = append(opts, option.WithCredentialsFile(path))
	}

	var appCfg *firebasesdk.Config
	if projectID := cfg.GetFirebaseProjectID(); projectID != "" {
		appCfg = &firebasesdk.Config{ProjectID: projectID}
	}

	app, err := firebasesdk.NewApp(ctx, appCfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create firebase auth client: %w", err)
	}

	return &Firebase{users: client}, nil
}

// DeleteUser removes the Firebase Authentication user with the given uid.
func (f *Firebase) DeleteUser(ctx context.Context, uid string) error {
	if err := f.users.DeleteUser(ctx, uid); err != nil {
		return apperr.Upstream(classify(err), err)
	}
	return nil
}

// Name returns the provider identifier.
func (f *Firebase) Name() string {
	return providerName
}

func classify(err error) apperr.Kind {
	switch {
	case auth.IsUserNotFound(err), errorutils.IsNotFound(err):
		return apperr.KindNotFound
	case errorutils.IsPermissionDenied(err):
		return apperr.KindForbidden
	case errorutils.IsUnauthenticated(err):
		return apperr.KindUnauthorized
	case errorutils.IsInvalidArgument(err):
		return apperr.KindBadRequest
	case errorutils.IsUnavailable(err), errorutils.IsDeadlineExceeded(err),
		errors.Is(err, context.DeadlineExceeded):
		return apperr.KindUnavailable
	default:
		return apperr.KindUnknown
	}
}

var _ authprovider.Provider = (*Firebase)(nil)
