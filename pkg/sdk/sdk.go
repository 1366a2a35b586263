// Package sdk exposes the high-level Magic SDK entry points. It wires together
// configuration, the shared header set, the HTTP transport and the request
// pipeline, and hands out the User and Connect method modules.
package sdk

import (
	"context"
	"fmt"
	"net/http"

	"github.com/magiclabs/magic-go/pkg/config"
	"github.com/magiclabs/magic-go/pkg/rpc"
	"go.uber.org/zap"
)

// MagicSDK is the public interface of an initialized SDK instance.
type MagicSDK interface {
	// User returns the authentication module (tokens, user info, logout...).
	User() *UserModule

	// Connect returns the wallet-connection module.
	Connect() *ConnectModule

	// Headers returns the header set sent with every request. Changes apply
	// to all subsequent calls.
	Headers() *rpc.Headers

	// Invoke calls any catalogue method by name and blocks for the decoded
	// result (string, bool or *model.UserInfo depending on the method).
	Invoke(ctx context.Context, method string, params ...any) (any, error)

	// Close waits for in-flight calls and rejects new ones with rpc.ErrClosed.
	Close()
}

// Option customizes NewSDK.
type Option func(*options)

type options struct {
	httpClient *http.Client
	logger     *zap.Logger
	observer   rpc.Observer
}

// WithHTTPClient replaces the HTTP client built from config.Timeouts.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

// WithLogger replaces the logger built from config.LogFormat and Debug.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithObserver registers a per-call observer such as metrics.Collector.
func WithObserver(obs rpc.Observer) Option {
	return func(o *options) { o.observer = obs }
}

// Core is the concrete SDK implementation.
type Core struct {
	logger    *zap.Logger
	transport *rpc.HTTPTransport
	pipeline  *rpc.Pipeline
	user      *UserModule
	connect   *ConnectModule
}

// NewSDK validates cfg and builds an SDK instance around it.
func NewSDK(cfg *config.Config, opts ...Option) (MagicSDK, error) {
	if cfg == nil {
		cfg = &config.Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	logger := o.logger
	if logger == nil {
		var err error
		logger, err = newLogger(cfg)
		if err != nil {
			return nil, fmt.Errorf("build logger: %w", err)
		}
	}

	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = http.DefaultClient
		if cfg.Timeouts.Request > 0 {
			httpClient = &http.Client{Timeout: cfg.Timeouts.Request}
		}
	}

	headers := rpc.NewHeaders()
	if cfg.APIKey != "" {
		headers.Set(config.APIKeyHeader, cfg.APIKey)
	}
	for k, v := range cfg.Headers {
		headers.Set(k, v)
	}

	transportOpts := []rpc.TransportOption{
		rpc.WithHTTPClient(httpClient),
		rpc.WithTransportLogger(logger),
	}
	if cfg.RateLimit.Enabled() {
		transportOpts = append(transportOpts, rpc.WithRateLimit(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst))
	}
	transport := rpc.NewHTTPTransport(headers, transportOpts...)

	pipelineOpts := []rpc.PipelineOption{rpc.WithLogger(logger)}
	if o.observer != nil {
		pipelineOpts = append(pipelineOpts, rpc.WithObserver(o.observer))
	}

	c := &Core{
		logger:    logger,
		transport: transport,
		pipeline:  rpc.NewPipeline(cfg.BackendURL, transport, pipelineOpts...),
	}
	c.user = &UserModule{core: c}
	c.connect = &ConnectModule{core: c}

	logger.Debug("magic sdk initialized",
		zap.String("backend", cfg.BackendURL),
		zap.Bool("rate_limited", cfg.RateLimit.Enabled()))

	return c, nil
}

// User returns the authentication module.
func (c *Core) User() *UserModule {
	return c.user
}

// Connect returns the wallet-connection module.
func (c *Core) Connect() *ConnectModule {
	return c.connect
}

// Headers returns the header set shared by every request.
func (c *Core) Headers() *rpc.Headers {
	return c.transport.Headers()
}

// Invoke calls a catalogue method and waits for its result. It goes through
// the same worker queue as the module methods, so it fails with rpc.ErrClosed
// after Close.
func (c *Core) Invoke(ctx context.Context, method string, params ...any) (any, error) {
	spec, ok := Lookup(method)
	if !ok {
		return nil, fmt.Errorf("unknown method %q", method)
	}
	params, err := spec.normalize(params)
	if err != nil {
		return nil, err
	}
	c.warnIfAuthOnly(spec)

	return spec.call(ctx, c.pipeline, rpc.NewRequest(method, params...))
}

// Close waits for in-flight calls and flushes the logger.
func (c *Core) Close() {
	c.pipeline.Close()
	_ = c.logger.Sync()
}

func (c *Core) warnIfAuthOnly(spec MethodSpec) {
	if spec.AuthOnly {
		c.logger.Warn("method is only supported by Magic Auth", zap.String("method", string(spec.Method)))
	}
}

// invoke is the single generic entry point every module method goes through.
func invoke[T any](ctx context.Context, c *Core, m Method, done rpc.Completion[T], params ...any) {
	if spec, ok := Lookup(string(m)); ok {
		c.warnIfAuthOnly(spec)
	}
	rpc.Call(ctx, c.pipeline, rpc.NewRequest(string(m), params...), done)
}
