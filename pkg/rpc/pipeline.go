// Package rpc implements the request pipeline behind every SDK call: a
// Request is JSON-encoded, POSTed to the backend endpoint, the HTTP status is
// validated and the response's result member is decoded into the caller's
// type. Results are delivered either to a Completion callback or through a
// Future built on top of that callback.
package rpc

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"
)

// Observer is notified once per executed request. Implementations must be
// safe for concurrent use.
type Observer interface {
	Observe(method string, elapsed time.Duration, err error)
}

// Pipeline composes a Codec and a Transport against one fixed endpoint. It
// keeps no per-call state, so concurrent Execute calls do not interact.
type Pipeline struct {
	url       string
	transport Transport
	codec     Codec
	queue     *Queue
	logger    *zap.Logger
	observer  Observer
}

// PipelineOption customizes a Pipeline.
type PipelineOption func(*Pipeline)

// WithCodec replaces the JSONCodec.
func WithCodec(c Codec) PipelineOption {
	return func(p *Pipeline) { p.codec = c }
}

// WithLogger sets the logger used for per-call diagnostics.
func WithLogger(l *zap.Logger) PipelineOption {
	return func(p *Pipeline) { p.logger = l }
}

// WithObserver registers an Observer, e.g. a metrics collector.
func WithObserver(o Observer) PipelineOption {
	return func(p *Pipeline) { p.observer = o }
}

// NewPipeline builds a pipeline that POSTs every request to url.
func NewPipeline(url string, transport Transport, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		url:       url,
		transport: transport,
		codec:     JSONCodec{},
		queue:     NewQueue(),
		logger:    zap.L(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Execute runs the pipeline synchronously and decodes the result into out,
// which must be a pointer. The first failing step ends the call.
func (p *Pipeline) Execute(ctx context.Context, req Request, out any) error {
	start := time.Now()
	raw, err := p.roundTrip(ctx, req)
	if err == nil {
		err = p.codec.Decode(raw, out)
	}
	p.record(req.Method, start, err)
	return err
}

func (p *Pipeline) record(method string, start time.Time, err error) {
	elapsed := time.Since(start)
	if p.observer != nil {
		p.observer.Observe(method, elapsed, err)
	}
	if err != nil {
		p.logger.Debug("rpc call failed",
			zap.String("method", method),
			zap.Duration("elapsed", elapsed),
			zap.Error(err))
		return
	}
	p.logger.Debug("rpc call completed",
		zap.String("method", method),
		zap.Duration("elapsed", elapsed))
}

func (p *Pipeline) roundTrip(ctx context.Context, req Request) (json.RawMessage, error) {
	payload, err := p.codec.Encode(req, "")
	if err != nil {
		return nil, err
	}
	body, err := p.transport.Send(ctx, p.url, "POST", payload)
	if err != nil {
		return nil, err
	}
	return resultOf(p.codec, body)
}

// Close stops accepting asynchronous calls and waits for the in-flight ones.
// Calls made afterwards complete with ErrClosed.
func (p *Pipeline) Close() {
	p.queue.Close()
}
