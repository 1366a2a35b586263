package rpc

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Transport performs exactly one HTTP exchange per Send and returns the body
// of a successful (2xx) response.
type Transport interface {
	Send(ctx context.Context, url, method string, body []byte) ([]byte, error)
}

// TransportFunc adapts a function to the Transport interface.
type TransportFunc func(ctx context.Context, url, method string, body []byte) ([]byte, error)

// Send calls f.
func (f TransportFunc) Send(ctx context.Context, url, method string, body []byte) ([]byte, error) {
	return f(ctx, url, method, body)
}

// RawResponse is what came back from the network before status validation.
type RawResponse struct {
	StatusCode int
	Body       []byte
}

// Validate returns the body when the status is in [200, 300) and an
// *InvalidResponseCodeError otherwise. The body of a rejected response is
// dropped without being looked at.
func (r RawResponse) Validate() ([]byte, error) {
	if r.StatusCode < 200 || r.StatusCode >= 300 {
		return nil, &InvalidResponseCodeError{StatusCode: r.StatusCode}
	}
	return r.Body, nil
}

// HTTPTransport sends requests with an *http.Client, adding the shared
// Headers to each one. It never retries.
type HTTPTransport struct {
	client  *http.Client
	headers *Headers
	limiter *rate.Limiter
	logger  *zap.Logger
}

// TransportOption customizes an HTTPTransport.
type TransportOption func(*HTTPTransport)

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(c *http.Client) TransportOption {
	return func(t *HTTPTransport) { t.client = c }
}

// WithRateLimit makes Send wait for a token before each request. A zero or
// negative rps leaves the transport unlimited.
func WithRateLimit(rps float64, burst int) TransportOption {
	return func(t *HTTPTransport) {
		if rps <= 0 {
			t.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		t.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithTransportLogger sets the logger used for transport diagnostics.
func WithTransportLogger(l *zap.Logger) TransportOption {
	return func(t *HTTPTransport) { t.logger = l }
}

// NewHTTPTransport builds a transport over headers. A nil headers argument
// gets a fresh NewHeaders set.
func NewHTTPTransport(headers *Headers, opts ...TransportOption) *HTTPTransport {
	if headers == nil {
		headers = NewHeaders()
	}
	t := &HTTPTransport{
		client:  http.DefaultClient,
		headers: headers,
		logger:  zap.L(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Headers returns the header set shared by every request of this transport.
func (t *HTTPTransport) Headers() *Headers {
	return t.headers
}

// Send issues one request. Network-level failures are reported as
// *UnexpectedResponseError, non-2xx statuses as *InvalidResponseCodeError.
func (t *HTTPTransport) Send(ctx context.Context, url, method string, body []byte) ([]byte, error) {
	if t.limiter != nil {
		if err := t.limiter.Wait(ctx); err != nil {
			return nil, &UnexpectedResponseError{Err: err}
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return nil, &UnexpectedResponseError{Err: err}
	}
	t.headers.apply(req)

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, &UnexpectedResponseError{Err: err}
	}
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			t.logger.Debug("failed to close response body", zap.Error(err))
		}
	}(resp.Body)

	if _, err := (RawResponse{StatusCode: resp.StatusCode}).Validate(); err != nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, err
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UnexpectedResponseError{Err: err}
	}
	return data, nil
}
