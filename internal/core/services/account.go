package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/arclight-labs/gate-cli/internal/core/domain"
	"github.com/arclight-labs/gate-cli/internal/core/ports/driven"
	"github.com/arclight-labs/gate-cli/internal/core/ports/driving"
	"github.com/arclight-labs/gate-cli/internal/logger"
)

// Ensure AccountService implements the interface.
var _ driving.AccountService = (*AccountService)(nil)

// SessionIDFunc produces session identifiers. Injected so storage-level
// tests can pin the value; production wiring passes uuid.NewString.
type SessionIDFunc func() string

// AccountService is the domain-facing boundary over the account data
// sources. Every remote operation follows the same sequence: consult
// the network checker, call the data source, translate low-level errors
// into domain failures, convert wire models into entities.
//
// The connectivity check and the remote call are deliberately not
// atomic. The network can drop between the two; the remote call's own
// failure path covers that window.
type AccountService struct {
	api      driven.AccountAPI
	network  driven.NetworkChecker
	sessions driven.SessionStore
	newID    SessionIDFunc
}

// NewAccountService creates a new account service.
func NewAccountService(
	api driven.AccountAPI,
	network driven.NetworkChecker,
	sessions driven.SessionStore,
	newID SessionIDFunc,
) *AccountService {
	return &AccountService{
		api:      api,
		network:  network,
		sessions: sessions,
		newID:    newID,
	}
}

// Login authenticates the credentials against the remote service,
// persists the resulting session and returns the account entity.
func (s *AccountService) Login(ctx context.Context, params domain.LoginParams) (domain.User, error) {
	if err := params.Validate(); err != nil {
		return domain.User{}, err
	}
	if !s.network.IsConnected(ctx) {
		return domain.User{}, domain.ErrNoConnectivity
	}

	result, err := s.api.Login(ctx, params)
	if err != nil {
		return domain.User{}, asDomainFailure(err)
	}

	user := toEntity(result.User)
	if err := s.storeSession(ctx, user, result.Token); err != nil {
		return domain.User{}, err
	}

	logger.Debug("logged in as %s", user.Email)
	return user, nil
}

// Register creates a new account and logs the user in.
func (s *AccountService) Register(ctx context.Context, params domain.RegisterParams) (domain.User, error) {
	if err := params.Validate(); err != nil {
		return domain.User{}, err
	}
	if !s.network.IsConnected(ctx) {
		return domain.User{}, domain.ErrNoConnectivity
	}

	result, err := s.api.Register(ctx, params)
	if err != nil {
		return domain.User{}, asDomainFailure(err)
	}

	user := toEntity(result.User)
	if err := s.storeSession(ctx, user, result.Token); err != nil {
		return domain.User{}, err
	}

	logger.Debug("registered account %s", user.Email)
	return user, nil
}

// Logout clears the stored session. When RevokeRemote is set and the
// network is reachable, the access token is revoked on the service
// first; revocation failures are logged but never block the local
// logout.
func (s *AccountService) Logout(ctx context.Context, params domain.LogoutParams) error {
	session, err := s.sessions.Current(ctx)
	if err != nil {
		return err
	}

	if params.RevokeRemote && s.network.IsConnected(ctx) {
		if err := s.api.Revoke(ctx, session.AccessToken); err != nil {
			logger.Warn("remote token revocation failed: %v", err)
		}
	}

	return s.sessions.Delete(ctx)
}

// CurrentUser returns the account behind the stored session. When the
// network is reachable the entity is refreshed from the remote service;
// offline, the locally stored copy is returned as-is.
func (s *AccountService) CurrentUser(ctx context.Context) (domain.User, error) {
	session, err := s.sessions.Current(ctx)
	if err != nil {
		return domain.User{}, err
	}
	if !session.IsAuthenticated() {
		return domain.User{}, domain.ErrNotAuthenticated
	}

	if !s.network.IsConnected(ctx) {
		return session.User, nil
	}

	record, err := s.api.FetchUser(ctx, session.AccessToken)
	if err != nil {
		return domain.User{}, asDomainFailure(err)
	}

	user := toEntity(*record)

	// Keep the stored copy in sync with the service.
	session.User = user
	if err := s.sessions.Save(ctx, *session); err != nil {
		return domain.User{}, err
	}

	return user, nil
}

// Session returns the locally stored session without touching the network.
func (s *AccountService) Session(ctx context.Context) (*domain.Session, error) {
	return s.sessions.Current(ctx)
}

func (s *AccountService) storeSession(ctx context.Context, user domain.User, grant driven.TokenGrant) error {
	session := domain.Session{
		ID:           s.newID(),
		User:         user,
		AccessToken:  grant.AccessToken,
		RefreshToken: grant.RefreshToken,
		Expiry:       grant.Expiry,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}

// toEntity converts the wire model into the domain entity.
func toEntity(record driven.UserRecord) domain.User {
	return domain.User{
		ID:          record.ID,
		Email:       record.Email,
		DisplayName: record.DisplayName,
		Verified:    record.Verified,
		CreatedAt:   record.CreatedAt,
	}
}

// asDomainFailure maps a data-source error onto the domain taxonomy.
// Errors already carrying a domain sentinel pass through unchanged;
// anything else becomes a server failure wrapping the original message.
func asDomainFailure(err error) error {
	if err == nil {
		return nil
	}
	if isDomain(err) {
		return err
	}
	return fmt.Errorf("%w: %v", domain.ErrServer, err)
}

func isDomain(err error) bool {
	for _, sentinel := range []error{
		domain.ErrNoConnectivity,
		domain.ErrServer,
		domain.ErrInvalidCredentials,
		domain.ErrNotAuthenticated,
		domain.ErrInvalidInput,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
