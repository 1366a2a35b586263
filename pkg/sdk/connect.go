package sdk

import (
	"context"

	"github.com/magiclabs/magic-go/pkg/rpc"
)

// ConnectModule groups the wallet-connection methods.
type ConnectModule struct {
	core *Core
}

// ShowWalletCallback asks the backend to display the wallet.
func (c *ConnectModule) ShowWalletCallback(ctx context.Context, done rpc.Completion[string]) {
	invoke(ctx, c.core, MethodShowWallet, done)
}

// ShowWallet is the future form of ShowWalletCallback.
func (c *ConnectModule) ShowWallet(ctx context.Context) *rpc.Future[string] {
	return rpc.NewFuture(func(done rpc.Completion[string]) {
		c.ShowWalletCallback(ctx, done)
	})
}

// RequestUserInfoCallback asks the connected wallet to share user info.
func (c *ConnectModule) RequestUserInfoCallback(ctx context.Context, done rpc.Completion[string]) {
	invoke(ctx, c.core, MethodRequestUserInfo, done)
}

// RequestUserInfo is the future form of RequestUserInfoCallback.
func (c *ConnectModule) RequestUserInfo(ctx context.Context) *rpc.Future[string] {
	return rpc.NewFuture(func(done rpc.Completion[string]) {
		c.RequestUserInfoCallback(ctx, done)
	})
}

// DisconnectCallback disconnects the wallet.
func (c *ConnectModule) DisconnectCallback(ctx context.Context, done rpc.Completion[string]) {
	invoke(ctx, c.core, MethodDisconnect, done)
}

// Disconnect is the future form of DisconnectCallback.
func (c *ConnectModule) Disconnect(ctx context.Context) *rpc.Future[string] {
	return rpc.NewFuture(func(done rpc.Completion[string]) {
		c.DisconnectCallback(ctx, done)
	})
}
