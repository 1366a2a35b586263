package rpc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Codec converts request bodies to wire bytes and response bytes back to
// typed values.
type Codec interface {
	// Encode serializes body. A non-empty prefix wraps the body as a
	// single-entry object {prefix: body} before serialization.
	Encode(body any, prefix string) ([]byte, error)
	// Decode deserializes data into v.
	Decode(data []byte, v any) error
}

// JSONCodec is the only wire encoding the backend understands.
type JSONCodec struct{}

// Encode returns *EncodeError when body holds values JSON cannot represent
// (NaN, infinities, channels, functions, failing marshalers).
func (JSONCodec) Encode(body any, prefix string) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if prefix != "" {
		data, err = json.Marshal(map[string]any{prefix: body})
	} else {
		data, err = json.Marshal(body)
	}
	if err != nil {
		return nil, &EncodeError{Err: err}
	}
	return data, nil
}

// Decode returns *DecodeError for malformed JSON or a type mismatch.
func (JSONCodec) Decode(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return &DecodeError{Err: err}
	}
	return nil
}

// DecodePrefixed is the inverse of Encode with a prefix: it reads the member
// named prefix out of a single keyed envelope and decodes it into v.
func (c JSONCodec) DecodePrefixed(data []byte, prefix string, v any) error {
	var envelope map[string]json.RawMessage
	if err := c.Decode(data, &envelope); err != nil {
		return err
	}
	raw, ok := envelope[prefix]
	if !ok {
		return &DecodeError{Err: fmt.Errorf("missing key %q", prefix)}
	}
	return c.Decode(raw, v)
}

// response is the envelope every backend reply is wrapped in.
type response struct {
	ID      json.RawMessage `json:"id,omitempty"`
	JSONRPC string          `json:"jsonrpc,omitempty"`
	Result  json.RawMessage `json:"result"`
	Error   *RPCError       `json:"error,omitempty"`
}

var jsonNull = []byte("null")

// resultOf extracts the raw result member of a response body. An error
// object yields *RPCError; an absent or null result is a *DecodeError.
func resultOf(c Codec, data []byte) (json.RawMessage, error) {
	var resp response
	if err := c.Decode(data, &resp); err != nil {
		return nil, err
	}
	if resp.Error != nil {
		return nil, resp.Error
	}
	if len(resp.Result) == 0 || bytes.Equal(bytes.TrimSpace(resp.Result), jsonNull) {
		return nil, &DecodeError{Err: errors.New("response has no result")}
	}
	return resp.Result, nil
}

// DecodeResult decodes the result member of a response body into v.
func (c JSONCodec) DecodeResult(data []byte, v any) error {
	raw, err := resultOf(c, data)
	if err != nil {
		return err
	}
	return c.Decode(raw, v)
}
