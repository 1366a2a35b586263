package sdk

import (
	"context"
	"fmt"

	"github.com/magiclabs/magic-go/pkg/model"
	"github.com/magiclabs/magic-go/pkg/rpc"
)

// Method is an RPC method identifier understood by the Magic backend.
type Method string

// Connect methods.
const (
	MethodShowWallet      Method = "mc_wallet"
	MethodRequestUserInfo Method = "mc_request_user_info"
	MethodDisconnect      Method = "mc_disconnect"
)

// User (Magic Auth) methods.
const (
	MethodGetIDToken        Method = "magic_auth_get_id_token"
	MethodGenerateIDToken   Method = "magic_auth_generate_id_token"
	MethodGetInfo           Method = "magic_get_info"
	MethodIsLoggedIn        Method = "magic_auth_is_logged_in"
	MethodUpdateEmail       Method = "magic_auth_update_email"
	MethodLogout            Method = "magic_auth_logout"
	MethodShowSettings      Method = "magic_auth_settings"
	MethodUpdatePhoneNumber Method = "magic_auth_update_phone_number"
	MethodRecoverAccount    Method = "magic_auth_recover_account"
)

// ResultKind is the shape of a method's decoded result.
type ResultKind int

const (
	ResultString ResultKind = iota
	ResultBool
	ResultUserInfo
)

func (k ResultKind) String() string {
	switch k {
	case ResultString:
		return "string"
	case ResultBool:
		return "bool"
	case ResultUserInfo:
		return "UserInfo"
	default:
		return "unknown"
	}
}

// ParamKind is the shape of a method's params array.
type ParamKind int

const (
	// ParamsNone sends "params": [].
	ParamsNone ParamKind = iota
	// ParamsOptionalConfig sends one configuration object, or [null] when absent.
	ParamsOptionalConfig
	// ParamsConfig sends exactly one configuration object.
	ParamsConfig
)

// MethodSpec is one row of the RPC catalogue.
type MethodSpec struct {
	Method Method
	Params ParamKind
	Result ResultKind
	// AuthOnly methods log a warning on use: they are Magic Auth features.
	AuthOnly bool
}

// Methods is the full RPC catalogue in declaration order.
var Methods = []MethodSpec{
	{Method: MethodShowWallet, Params: ParamsNone, Result: ResultString},
	{Method: MethodRequestUserInfo, Params: ParamsNone, Result: ResultString},
	{Method: MethodDisconnect, Params: ParamsNone, Result: ResultString},
	{Method: MethodGetIDToken, Params: ParamsOptionalConfig, Result: ResultString, AuthOnly: true},
	{Method: MethodGenerateIDToken, Params: ParamsOptionalConfig, Result: ResultString, AuthOnly: true},
	{Method: MethodGetInfo, Params: ParamsNone, Result: ResultUserInfo, AuthOnly: true},
	{Method: MethodIsLoggedIn, Params: ParamsNone, Result: ResultBool, AuthOnly: true},
	{Method: MethodUpdateEmail, Params: ParamsConfig, Result: ResultBool},
	{Method: MethodLogout, Params: ParamsNone, Result: ResultBool, AuthOnly: true},
	{Method: MethodShowSettings, Params: ParamsNone, Result: ResultUserInfo, AuthOnly: true},
	{Method: MethodUpdatePhoneNumber, Params: ParamsNone, Result: ResultString},
	{Method: MethodRecoverAccount, Params: ParamsConfig, Result: ResultBool, AuthOnly: true},
}

var methodIndex = func() map[Method]MethodSpec {
	idx := make(map[Method]MethodSpec, len(Methods))
	for _, m := range Methods {
		idx[m.Method] = m
	}
	return idx
}()

// Lookup finds a catalogue entry by its wire name.
func Lookup(name string) (MethodSpec, bool) {
	spec, ok := methodIndex[Method(name)]
	return spec, ok
}

// call runs req through the pipeline's worker queue and waits for the result
// typed by s.Result: string, bool or *model.UserInfo.
func (s MethodSpec) call(ctx context.Context, p *rpc.Pipeline, req rpc.Request) (any, error) {
	switch s.Result {
	case ResultBool:
		return callSync[bool](ctx, p, req)
	case ResultUserInfo:
		info, err := rpc.CallFuture[model.UserInfo](ctx, p, req).Await(ctx)
		if err != nil {
			return nil, err
		}
		return &info, nil
	default:
		return callSync[string](ctx, p, req)
	}
}

func callSync[T any](ctx context.Context, p *rpc.Pipeline, req rpc.Request) (any, error) {
	v, err := rpc.CallFuture[T](ctx, p, req).Await(ctx)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// normalize checks params against the catalogue and fills the [null]
// placeholder of an omitted optional configuration.
func (s MethodSpec) normalize(params []any) ([]any, error) {
	switch s.Params {
	case ParamsNone:
		if len(params) != 0 {
			return nil, fmt.Errorf("%s takes no params, got %d", s.Method, len(params))
		}
	case ParamsOptionalConfig:
		if len(params) == 0 {
			return []any{nil}, nil
		}
		if len(params) != 1 {
			return nil, fmt.Errorf("%s takes at most one param, got %d", s.Method, len(params))
		}
	case ParamsConfig:
		if len(params) != 1 {
			return nil, fmt.Errorf("%s takes exactly one param, got %d", s.Method, len(params))
		}
	}
	return params, nil
}
