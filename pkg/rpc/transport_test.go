package rpc

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/magiclabs/magic-go/internal/testutil/rpcstub"
	"github.com/stretchr/testify/require"
)

func TestRawResponseValidate_StatusBoundary(t *testing.T) {
	tests := []struct {
		status int
		ok     bool
	}{
		{199, false},
		{200, true},
		{204, true},
		{299, true},
		{300, false},
		{404, false},
		{500, false},
	}
	for _, tt := range tests {
		body, err := RawResponse{StatusCode: tt.status, Body: []byte(`{"result":true}`)}.Validate()
		if tt.ok {
			require.NoError(t, err, "status %d", tt.status)
			require.Equal(t, `{"result":true}`, string(body))
			continue
		}
		require.Nil(t, body, "status %d", tt.status)
		require.ErrorIs(t, err, ErrInvalidResponseCode, "status %d", tt.status)
		var codeErr *InvalidResponseCodeError
		require.True(t, errors.As(err, &codeErr))
		require.Equal(t, tt.status, codeErr.StatusCode)
	}
}

func TestHTTPTransport_Statuses(t *testing.T) {
	tests := []struct {
		status int
		ok     bool
	}{
		{200, true},
		{299, true},
		{300, false},
		{500, false},
	}
	for _, tt := range tests {
		srv := rpcstub.New(t, func(rpcstub.Request) rpcstub.Reply {
			return rpcstub.Raw(tt.status, `{"result":"x"}`)
		})
		body, err := NewHTTPTransport(nil).Send(context.Background(), srv.URL, http.MethodPost, []byte(`{}`))
		if tt.ok {
			require.NoError(t, err, "status %d", tt.status)
			require.Equal(t, `{"result":"x"}`, string(body))
		} else {
			require.ErrorIs(t, err, ErrInvalidResponseCode, "status %d", tt.status)
		}
	}
}

func TestHTTPTransport_HeaderPropagation(t *testing.T) {
	srv := rpcstub.New(t, func(rpcstub.Request) rpcstub.Reply { return rpcstub.Result(true) })
	tr := NewHTTPTransport(nil)

	_, err := tr.Send(context.Background(), srv.URL, http.MethodPost, []byte(`{}`))
	require.NoError(t, err)
	first, _ := srv.Last()
	require.Equal(t, "application/json", first.Header.Get("Content-Type"))
	require.Empty(t, first.Header.Get("X-Custom"))

	tr.Headers().Set("x-custom", "v")
	for i := 0; i < 3; i++ {
		_, err := tr.Send(context.Background(), srv.URL, http.MethodPost, []byte(`{}`))
		require.NoError(t, err)
		last, _ := srv.Last()
		require.Equal(t, "v", last.Header.Get("X-Custom"))
		require.Equal(t, "application/json", last.Header.Get("Content-Type"))
	}
}

func TestHTTPTransport_NetworkFailure(t *testing.T) {
	srv := rpcstub.New(t, func(rpcstub.Request) rpcstub.Reply { return rpcstub.Result(true) })
	url := srv.URL
	srv.Close()

	_, err := NewHTTPTransport(nil).Send(context.Background(), url, http.MethodPost, nil)
	var unexpected *UnexpectedResponseError
	require.True(t, errors.As(err, &unexpected), "got %v", err)
	require.Error(t, unexpected.Unwrap())
}

func TestHTTPTransport_ClientTimeout(t *testing.T) {
	srv := rpcstub.New(t, func(rpcstub.Request) rpcstub.Reply {
		r := rpcstub.Result(true)
		r.Delay = 200 * time.Millisecond
		return r
	})
	tr := NewHTTPTransport(nil, WithHTTPClient(&http.Client{Timeout: 20 * time.Millisecond}))

	_, err := tr.Send(context.Background(), srv.URL, http.MethodPost, nil)
	var unexpected *UnexpectedResponseError
	require.True(t, errors.As(err, &unexpected), "got %v", err)
}

func TestHTTPTransport_RateLimit(t *testing.T) {
	srv := rpcstub.New(t, func(rpcstub.Request) rpcstub.Reply { return rpcstub.Result(true) })
	tr := NewHTTPTransport(nil, WithRateLimit(0.001, 1))

	_, err := tr.Send(context.Background(), srv.URL, http.MethodPost, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = tr.Send(ctx, srv.URL, http.MethodPost, nil)
	var unexpected *UnexpectedResponseError
	require.True(t, errors.As(err, &unexpected), "got %v", err)
	require.Len(t, srv.Requests(), 1)
}

func TestHeaders(t *testing.T) {
	h := NewHeaders()
	v, ok := h.Get("content-type")
	require.True(t, ok)
	require.Equal(t, DefaultContentType, v)

	h.Set("X-Magic-API-Key", "pk_live")
	v, ok = h.Get("x-magic-api-key")
	require.True(t, ok)
	require.Equal(t, "pk_live", v)

	snapshot := h.Clone()
	h.Del("X-Magic-Api-Key")
	_, ok = h.Get("X-Magic-API-Key")
	require.False(t, ok)
	require.Equal(t, "pk_live", snapshot["X-Magic-Api-Key"])
}
