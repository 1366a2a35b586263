package sdk

import (
	"context"

	"github.com/magiclabs/magic-go/pkg/model"
	"github.com/magiclabs/magic-go/pkg/rpc"
)

// UserModule groups the Magic Auth user methods. Every operation comes in a
// callback form (suffix Callback), which is the one that talks to the
// pipeline, and a future form derived from it.
type UserModule struct {
	core *Core
}

// GetIDTokenCallback fetches a DID token for the current session. A nil
// configuration is sent as null and lets the backend pick the lifespan.
func (u *UserModule) GetIDTokenCallback(ctx context.Context, cfg *model.GetIDTokenConfiguration, done rpc.Completion[string]) {
	invoke(ctx, u.core, MethodGetIDToken, done, cfg)
}

// GetIDToken is the future form of GetIDTokenCallback.
func (u *UserModule) GetIDToken(ctx context.Context, cfg *model.GetIDTokenConfiguration) *rpc.Future[string] {
	return rpc.NewFuture(func(done rpc.Completion[string]) {
		u.GetIDTokenCallback(ctx, cfg, done)
	})
}

// GenerateIDTokenCallback generates a new DID token, optionally signing an
// attachment into it.
func (u *UserModule) GenerateIDTokenCallback(ctx context.Context, cfg *model.GenerateIDTokenConfiguration, done rpc.Completion[string]) {
	invoke(ctx, u.core, MethodGenerateIDToken, done, cfg)
}

// GenerateIDToken is the future form of GenerateIDTokenCallback.
func (u *UserModule) GenerateIDToken(ctx context.Context, cfg *model.GenerateIDTokenConfiguration) *rpc.Future[string] {
	return rpc.NewFuture(func(done rpc.Completion[string]) {
		u.GenerateIDTokenCallback(ctx, cfg, done)
	})
}

// GetInfoCallback retrieves information about the authenticated user.
func (u *UserModule) GetInfoCallback(ctx context.Context, done rpc.Completion[model.UserInfo]) {
	invoke(ctx, u.core, MethodGetInfo, done)
}

// GetInfo is the future form of GetInfoCallback.
func (u *UserModule) GetInfo(ctx context.Context) *rpc.Future[model.UserInfo] {
	return rpc.NewFuture(func(done rpc.Completion[model.UserInfo]) {
		u.GetInfoCallback(ctx, done)
	})
}

// IsLoggedInCallback reports whether a user session is active.
func (u *UserModule) IsLoggedInCallback(ctx context.Context, done rpc.Completion[bool]) {
	invoke(ctx, u.core, MethodIsLoggedIn, done)
}

// IsLoggedIn is the future form of IsLoggedInCallback.
func (u *UserModule) IsLoggedIn(ctx context.Context) *rpc.Future[bool] {
	return rpc.NewFuture(func(done rpc.Completion[bool]) {
		u.IsLoggedInCallback(ctx, done)
	})
}

// UpdateEmailCallback starts an email change for the current user.
func (u *UserModule) UpdateEmailCallback(ctx context.Context, cfg model.UpdateEmailConfiguration, done rpc.Completion[bool]) {
	invoke(ctx, u.core, MethodUpdateEmail, done, cfg)
}

// UpdateEmail is the future form of UpdateEmailCallback.
func (u *UserModule) UpdateEmail(ctx context.Context, cfg model.UpdateEmailConfiguration) *rpc.Future[bool] {
	return rpc.NewFuture(func(done rpc.Completion[bool]) {
		u.UpdateEmailCallback(ctx, cfg, done)
	})
}

// LogoutCallback ends the current session.
func (u *UserModule) LogoutCallback(ctx context.Context, done rpc.Completion[bool]) {
	invoke(ctx, u.core, MethodLogout, done)
}

// Logout is the future form of LogoutCallback.
func (u *UserModule) Logout(ctx context.Context) *rpc.Future[bool] {
	return rpc.NewFuture(func(done rpc.Completion[bool]) {
		u.LogoutCallback(ctx, done)
	})
}

// ShowSettingsCallback opens the account settings flow and resolves with the
// user info as it stands when the flow closes.
func (u *UserModule) ShowSettingsCallback(ctx context.Context, done rpc.Completion[model.UserInfo]) {
	invoke(ctx, u.core, MethodShowSettings, done)
}

// ShowSettings is the future form of ShowSettingsCallback.
func (u *UserModule) ShowSettings(ctx context.Context) *rpc.Future[model.UserInfo] {
	return rpc.NewFuture(func(done rpc.Completion[model.UserInfo]) {
		u.ShowSettingsCallback(ctx, done)
	})
}

// UpdatePhoneNumberCallback starts a phone number change.
func (u *UserModule) UpdatePhoneNumberCallback(ctx context.Context, done rpc.Completion[string]) {
	invoke(ctx, u.core, MethodUpdatePhoneNumber, done)
}

// UpdatePhoneNumber is the future form of UpdatePhoneNumberCallback.
func (u *UserModule) UpdatePhoneNumber(ctx context.Context) *rpc.Future[string] {
	return rpc.NewFuture(func(done rpc.Completion[string]) {
		u.UpdatePhoneNumberCallback(ctx, done)
	})
}

// RecoverAccountCallback starts account recovery for the given email.
func (u *UserModule) RecoverAccountCallback(ctx context.Context, cfg model.RecoverAccountConfiguration, done rpc.Completion[bool]) {
	invoke(ctx, u.core, MethodRecoverAccount, done, cfg)
}

// RecoverAccount is the future form of RecoverAccountCallback.
func (u *UserModule) RecoverAccount(ctx context.Context, cfg model.RecoverAccountConfiguration) *rpc.Future[bool] {
	return rpc.NewFuture(func(done rpc.Completion[bool]) {
		u.RecoverAccountCallback(ctx, cfg, done)
	})
}
