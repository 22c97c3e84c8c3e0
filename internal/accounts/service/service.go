package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"account_admin_backend/internal/accounts/transport"
	"account_admin_backend/platform/apperr"
	"account_admin_backend/platform/authprovider"
	"account_admin_backend/platform/logger"
	"account_admin_backend/platform/metrics"
	"account_admin_backend/platform/validator"
)

const (
	eventDeleteUser = "delete_user"

	msgUIDRequired  = "UID is required"
	msgUIDNotString = "uid must be a string"
	msgDeleteFailed = "Error deleting user: %s"
)

// Service deletes accounts by delegating to the configured identity provider.
type Service struct {
	provider authprovider.Provider
	val      *validator.Validator
	metrics  metrics.Recorder
	log      *logger.Logger
}

// New creates a new accounts service.
func New(provider authprovider.Provider, val *validator.Validator, rec metrics.Recorder, log *logger.Logger) *Service {
	if rec == nil {
		rec = metrics.Nop{}
	}
	return &Service{provider: provider, val: val, metrics: rec, log: log}
}

// ProviderName returns the name of the backing identity provider.
func (s *Service) ProviderName() string {
	return s.provider.Name()
}

// DeleteUser removes the account named by req.UID. It never returns an
// error: validation and upstream failures are reported as Err results.
// Exactly one provider call is made when the uid is a non-empty string,
// none otherwise.
func (s *Service) DeleteUser(ctx context.Context, req transport.DeleteUserRequest) Result {
	log := s.log.WithContext(ctx)
	provider := s.provider.Name()

	if req.NonStringUID {
		err := apperr.Validation(msgUIDNotString)
		s.metrics.ObserveDeletion(provider, metrics.OutcomeRejected)
		log.AccountEvent(eventDeleteUser, provider, "", false, err.Kind.String(), err.Error())
		return Err(fmt.Sprintf(msgDeleteFailed, err.Error()))
	}

	if err := s.val.Struct(req); err != nil {
		s.metrics.ObserveDeletion(provider, metrics.OutcomeRejected)
		log.AccountEvent(eventDeleteUser, provider, req.UID, false,
			apperr.KindValidation.String(), strings.Join(validator.FailedFields(err), ","))
		return Err(msgUIDRequired)
	}

	start := time.Now()
	err := s.provider.DeleteUser(ctx, req.UID)
	s.metrics.ObserveLatency(provider, time.Since(start))

	if err != nil {
		kind := apperr.GetKind(err).String()
		s.metrics.ObserveDeletion(provider, metrics.OutcomeFailed)
		s.metrics.ObserveFailure(provider, kind)
		log.AccountEvent(eventDeleteUser, provider, req.UID, false, kind, err.Error())
		return Err(fmt.Sprintf(msgDeleteFailed, err.Error()))
	}

	s.metrics.ObserveDeletion(provider, metrics.OutcomeDeleted)
	log.AccountEvent(eventDeleteUser, provider, req.UID, true, "", "")
	return Ok(fmt.Sprintf("User %s deleted successfully", req.UID))
}
