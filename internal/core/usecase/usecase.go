// Package usecase exposes the application operations behind the uniform
// use-case call shapes. Each use case holds only its injected account
// service reference, keeps no state between calls, and propagates
// failures unchanged to the caller.
package usecase

import (
	"context"

	"github.com/arclight-labs/gate-cli/internal/core/domain"
	"github.com/arclight-labs/gate-cli/internal/core/ports/driving"
)

// Compile-time checks that every use case satisfies its call shape.
var (
	_ driving.UseCase[domain.LoginParams, domain.User]    = (*LoginUser)(nil)
	_ driving.UseCase[domain.RegisterParams, domain.User] = (*RegisterUser)(nil)
	_ driving.VoidUseCase[domain.LogoutParams]            = (*LogoutUser)(nil)
	_ driving.NoParamsUseCase[domain.User]                = (*CurrentUser)(nil)
)

// LoginUser authenticates a user and establishes the local session.
type LoginUser struct {
	accounts driving.AccountService
}

// NewLoginUser creates the login use case.
func NewLoginUser(accounts driving.AccountService) *LoginUser {
	return &LoginUser{accounts: accounts}
}

// Call performs the login.
func (u *LoginUser) Call(ctx context.Context, params domain.LoginParams) (domain.User, error) {
	return u.accounts.Login(ctx, params)
}

// RegisterUser creates a new account and logs the user in.
type RegisterUser struct {
	accounts driving.AccountService
}

// NewRegisterUser creates the register use case.
func NewRegisterUser(accounts driving.AccountService) *RegisterUser {
	return &RegisterUser{accounts: accounts}
}

// Call performs the registration.
func (u *RegisterUser) Call(ctx context.Context, params domain.RegisterParams) (domain.User, error) {
	return u.accounts.Register(ctx, params)
}

// LogoutUser ends the current session.
type LogoutUser struct {
	accounts driving.AccountService
}

// NewLogoutUser creates the logout use case.
func NewLogoutUser(accounts driving.AccountService) *LogoutUser {
	return &LogoutUser{accounts: accounts}
}

// Call performs the logout.
func (u *LogoutUser) Call(ctx context.Context, params domain.LogoutParams) error {
	return u.accounts.Logout(ctx, params)
}

// CurrentUser returns the account behind the stored session.
type CurrentUser struct {
	accounts driving.AccountService
}

// NewCurrentUser creates the current-user use case.
func NewCurrentUser(accounts driving.AccountService) *CurrentUser {
	return &CurrentUser{accounts: accounts}
}

// Call returns the current user.
func (u *CurrentUser) Call(ctx context.Context) (domain.User, error) {
	return u.accounts.CurrentUser(ctx)
}
