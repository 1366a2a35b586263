// Package sdk provides the high-level entry point for calling the Magic
// authentication and wallet-connection backend from Go.
//
// # Quick Start
//
//	cfg := &config.Config{APIKey: "pk_live_XXXXXXXX"}
//
//	magic, err := sdk.NewSDK(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer magic.Close()
//
//	loggedIn, err := magic.User().IsLoggedIn(ctx).Await(ctx)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// # Delivery
//
// Every operation exists in two forms that always agree on the outcome:
//
//   - a callback form, e.g. User().IsLoggedInCallback(ctx, func(ok bool, err error) {...}),
//     whose completion runs exactly once on an SDK worker goroutine;
//   - a future form, e.g. User().IsLoggedIn(ctx), returning *rpc.Future that
//     settles with the same value or error.
//
// Calls run concurrently and may complete in any order.
//
// # Methods
//
// Connect():
//   - ShowWallet (mc_wallet) -> string
//   - RequestUserInfo (mc_request_user_info) -> string
//   - Disconnect (mc_disconnect) -> string
//
// User():
//   - GetIDToken (magic_auth_get_id_token) -> string
//   - GenerateIDToken (magic_auth_generate_id_token) -> string
//   - GetInfo (magic_get_info) -> model.UserInfo
//   - IsLoggedIn (magic_auth_is_logged_in) -> bool
//   - UpdateEmail (magic_auth_update_email) -> bool
//   - Logout (magic_auth_logout) -> bool
//   - ShowSettings (magic_auth_settings) -> model.UserInfo
//   - UpdatePhoneNumber (magic_auth_update_phone_number) -> string
//   - RecoverAccount (magic_auth_recover_account) -> bool
//
// The same catalogue is available as data in Methods, and Invoke calls any
// entry by name.
//
// # Error Handling
//
// Failures are typed values from package rpc:
//
//	var unexpected *rpc.UnexpectedResponseError
//	switch {
//	case errors.Is(err, rpc.ErrInvalidResponseCode):
//		// backend answered with a non-2xx status
//	case errors.As(err, &unexpected):
//		// network failure or timeout
//	}
//
// Requests are never retried.
//
// # Headers
//
// Headers() returns the set sent with every request; it starts with
// Content-Type: application/json, the API key and config.Headers.
package sdk
