// Package metrics exports per-call Prometheus metrics for the SDK. A
// Collector plugs into the request pipeline through sdk.WithObserver.
package metrics

import (
	"errors"
	"time"

	"github.com/magiclabs/magic-go/pkg/rpc"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "magic_sdk"

// Outcome labels.
const (
	OutcomeOK                  = "ok"
	OutcomeInvalidResponseCode = "invalid_response_code"
	OutcomeUnexpectedResponse  = "unexpected_response"
	OutcomeEncodeError         = "encode_error"
	OutcomeDecodeError         = "decode_error"
	OutcomeRPCError            = "rpc_error"
	OutcomeClosed              = "closed"
	OutcomeOther               = "other"
)

// Collector counts calls and records their latency by method and outcome.
type Collector struct {
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewCollector creates the instruments and registers them with reg.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rpc_calls_total",
			Help:      "Number of RPC calls by method and outcome",
		}, []string{"method", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rpc_call_duration_seconds",
			Help:      "Wall time of RPC calls from encode to decode",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
	}

	for _, col := range []prometheus.Collector{c.calls, c.duration} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Observe implements rpc.Observer.
func (c *Collector) Observe(method string, elapsed time.Duration, err error) {
	c.calls.WithLabelValues(method, Outcome(err)).Inc()
	c.duration.WithLabelValues(method).Observe(elapsed.Seconds())
}

// Outcome maps a pipeline error to its label.
func Outcome(err error) string {
	var (
		unexpected *rpc.UnexpectedResponseError
		encErr     *rpc.EncodeError
		decErr     *rpc.DecodeError
		rpcErr     *rpc.RPCError
	)
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, rpc.ErrInvalidResponseCode):
		return OutcomeInvalidResponseCode
	case errors.Is(err, rpc.ErrClosed):
		return OutcomeClosed
	case errors.As(err, &unexpected):
		return OutcomeUnexpectedResponse
	case errors.As(err, &encErr):
		return OutcomeEncodeError
	case errors.As(err, &decErr):
		return OutcomeDecodeError
	case errors.As(err, &rpcErr):
		return OutcomeRPCError
	default:
		return OutcomeOther
	}
}
