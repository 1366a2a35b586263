package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/magiclabs/magic-go/internal/testutil/rpcstub"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCall(t *testing.T) {
	srv := rpcstub.New(t, rpcstub.Routes(map[string]rpcstub.Reply{
		"magic_auth_is_logged_in": rpcstub.Result(true),
		"magic_auth_update_email": rpcstub.Result(true),
	}))

	out, err := run(t, "call", "magic_auth_is_logged_in", "--backend", srv.URL, "-H", "X-Session=abc")
	require.NoError(t, err)
	require.Equal(t, "true\n", out)

	req, ok := srv.Last()
	require.True(t, ok)
	require.Equal(t, "abc", req.Header.Get("X-Session"))
	require.JSONEq(t, `[]`, string(req.Params))

	_, err = run(t, "call", "magic_auth_update_email", `{"email":"a@b.c"}`, "--backend", srv.URL)
	require.NoError(t, err)
	req, _ = srv.Last()
	require.JSONEq(t, `[{"email":"a@b.c"}]`, string(req.Params))
}

func TestCall_Errors(t *testing.T) {
	_, err := run(t, "call")
	require.Error(t, err)

	_, err = run(t, "call", "magic_auth_update_email", "{bad")
	require.ErrorContains(t, err, "param 1 is not valid JSON")

	_, err = run(t, "call", "magic_auth_logout", "--backend", "ftp://nope")
	require.Error(t, err)

	_, err = run(t, "call", "magic_no_such_method", "--backend", "http://127.0.0.1:1")
	require.Error(t, err)
}

func TestMethods(t *testing.T) {
	out, err := run(t, "methods")
	require.NoError(t, err)
	require.Contains(t, out, "magic_auth_get_id_token")
	require.Contains(t, out, "[config?]")

	out, err = run(t, "methods", "-o", "json")
	require.NoError(t, err)
	var rows []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 12)

	_, err = run(t, "methods", "-o", "yaml")
	require.Error(t, err)
}

func TestParseParams(t *testing.T) {
	params, err := parseParams([]string{`null`, `{"lifespan":900}`, `"x"`})
	require.NoError(t, err)
	require.Equal(t, []any{nil, map[string]any{"lifespan": float64(900)}, "x"}, params)

	params, err = parseParams(nil)
	require.NoError(t, err)
	require.Empty(t, params)
}
