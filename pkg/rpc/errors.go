package rpc

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrInvalidResponseCode matches any *InvalidResponseCodeError via errors.Is.
	ErrInvalidResponseCode = errors.New("invalid response code")
	// ErrClosed is delivered to calls submitted after the pipeline was closed.
	ErrClosed = errors.New("rpc: pipeline closed")
)

// UnexpectedResponseError reports a failure of the network layer itself:
// no response, no body, or an explicit transport error such as a timeout.
type UnexpectedResponseError struct {
	Err error
}

func (e *UnexpectedResponseError) Error() string {
	if e.Err == nil {
		return "unexpected response"
	}
	return fmt.Sprintf("unexpected response: %v", e.Err)
}

func (e *UnexpectedResponseError) Unwrap() error { return e.Err }

// InvalidResponseCodeError reports an HTTP status outside [200, 300).
// The response body is never parsed in that case.
type InvalidResponseCodeError struct {
	StatusCode int
}

func (e *InvalidResponseCodeError) Error() string {
	return fmt.Sprintf("invalid response code: %d", e.StatusCode)
}

func (e *InvalidResponseCodeError) Is(target error) bool {
	return target == ErrInvalidResponseCode
}

// EncodeError reports a request body that cannot be represented as JSON.
type EncodeError struct {
	Err error
}

func (e *EncodeError) Error() string { return fmt.Sprintf("encode request: %v", e.Err) }

func (e *EncodeError) Unwrap() error { return e.Err }

// DecodeError reports a response body that is malformed or does not match
// the expected result shape.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return fmt.Sprintf("decode response: %v", e.Err) }

func (e *DecodeError) Unwrap() error { return e.Err }

// RPCError is a JSON-RPC error object returned by the backend inside a
// successful (2xx) response.
type RPCError struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}
