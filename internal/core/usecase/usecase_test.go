package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arclight-labs/gate-cli/internal/core/domain"
)

// recordingAccounts records every call made through the AccountService
// boundary so tests can assert call counts and argument passthrough.
type recordingAccounts struct {
	loginCalls    int
	loginParams   domain.LoginParams
	loginUser     domain.User
	loginErr      error
	registerCalls int
	logoutCalls   int
	logoutParams  domain.LogoutParams
	logoutErr     error
	currentCalls  int
	currentUser   domain.User
	currentErr    error
}

func (r *recordingAccounts) Login(_ context.Context, params domain.LoginParams) (domain.User, error) {
	r.loginCalls++
	r.loginParams = params
	return r.loginUser, r.loginErr
}

func (r *recordingAccounts) Register(_ context.Context, params domain.RegisterParams) (domain.User, error) {
	r.registerCalls++
	return domain.User{Email: params.Email}, nil
}

func (r *recordingAccounts) Logout(_ context.Context, params domain.LogoutParams) error {
	r.logoutCalls++
	r.logoutParams = params
	return r.logoutErr
}

func (r *recordingAccounts) CurrentUser(context.Context) (domain.User, error) {
	r.currentCalls++
	return r.currentUser, r.currentErr
}

func (r *recordingAccounts) Session(context.Context) (*domain.Session, error) {
	return nil, domain.ErrNotAuthenticated
}

func TestLoginUser_InvokesServiceOnce(t *testing.T) {
	accounts := &recordingAccounts{loginUser: domain.User{ID: "1", Email: "a@b.com"}}
	uc := NewLoginUser(accounts)

	params := domain.LoginParams{Email: "a@b.com", Password: "x"}
	user, err := uc.Call(context.Background(), params)

	require.NoError(t, err)
	assert.Equal(t, 1, accounts.loginCalls)
	assert.Equal(t, params, accounts.loginParams, "arguments derive solely from params")
	assert.Equal(t, "1", user.ID)
}

func TestLoginUser_PropagatesFailureUnchanged(t *testing.T) {
	failure := domain.ErrNoConnectivity
	accounts := &recordingAccounts{loginErr: failure}
	uc := NewLoginUser(accounts)

	_, err := uc.Call(context.Background(), domain.LoginParams{Email: "a@b.com", Password: "x"})

	assert.Equal(t, failure, err, "no wrapping, no swallowing")
}

func TestLoginUser_StatelessAcrossCalls(t *testing.T) {
	accounts := &recordingAccounts{}
	uc := NewLoginUser(accounts)
	ctx := context.Background()

	_, _ = uc.Call(ctx, domain.LoginParams{Email: "first@b.com", Password: "1"})
	_, _ = uc.Call(ctx, domain.LoginParams{Email: "second@b.com", Password: "2"})

	assert.Equal(t, 2, accounts.loginCalls)
	assert.Equal(t, "second@b.com", accounts.loginParams.Email)
}

func TestRegisterUser_InvokesServiceOnce(t *testing.T) {
	accounts := &recordingAccounts{}
	uc := NewRegisterUser(accounts)

	user, err := uc.Call(context.Background(), domain.RegisterParams{
		Email:    "new@b.com",
		Password: "secret",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, accounts.registerCalls)
	assert.Equal(t, "new@b.com", user.Email)
}

func TestLogoutUser_InvokesServiceOnce(t *testing.T) {
	accounts := &recordingAccounts{}
	uc := NewLogoutUser(accounts)

	err := uc.Call(context.Background(), domain.LogoutParams{RevokeRemote: true})

	require.NoError(t, err)
	assert.Equal(t, 1, accounts.logoutCalls)
	assert.True(t, accounts.logoutParams.RevokeRemote)
}

func TestLogoutUser_PropagatesFailureUnchanged(t *testing.T) {
	failure := errors.New("store broken")
	accounts := &recordingAccounts{logoutErr: failure}
	uc := NewLogoutUser(accounts)

	err := uc.Call(context.Background(), domain.LogoutParams{})

	assert.Equal(t, failure, err)
}

func TestCurrentUser_InvokesServiceOnce(t *testing.T) {
	accounts := &recordingAccounts{currentUser: domain.User{ID: "9"}}
	uc := NewCurrentUser(accounts)

	user, err := uc.Call(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, accounts.currentCalls)
	assert.Equal(t, "9", user.ID)
}

func TestCurrentUser_PropagatesFailureUnchanged(t *testing.T) {
	accounts := &recordingAccounts{currentErr: domain.ErrNotAuthenticated}
	uc := NewCurrentUser(accounts)

	_, err := uc.Call(context.Background())

	assert.Equal(t, domain.ErrNotAuthenticated, err)
}
