package rpc

import (
	"net/http"
	"sync"
)

// DefaultContentType is the Content-Type every Headers set starts with.
const DefaultContentType = "application/json"

// Headers is the header set added to every outgoing request of a transport.
// It is typically populated at SDK initialization and may be changed at any
// time afterwards; changes apply to all subsequent requests. Names are
// canonicalized, so "x-api-key" and "X-Api-Key" refer to the same entry.
type Headers struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewHeaders returns a header set holding only Content-Type: application/json.
func NewHeaders() *Headers {
	return &Headers{values: map[string]string{
		"Content-Type": DefaultContentType,
	}}
}

// Set adds or replaces a header.
func (h *Headers) Set(name, value string) {
	h.mu.Lock()
	h.values[http.CanonicalHeaderKey(name)] = value
	h.mu.Unlock()
}

// Get returns the value for name and whether it is present.
func (h *Headers) Get(name string) (string, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	v, ok := h.values[http.CanonicalHeaderKey(name)]
	return v, ok
}

// Del removes a header.
func (h *Headers) Del(name string) {
	h.mu.Lock()
	delete(h.values, http.CanonicalHeaderKey(name))
	h.mu.Unlock()
}

// Clone returns a point-in-time copy of the header set.
func (h *Headers) Clone() map[string]string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make(map[string]string, len(h.values))
	for k, v := range h.values {
		out[k] = v
	}
	return out
}

// apply writes a snapshot of the set into an outgoing request.
func (h *Headers) apply(req *http.Request) {
	for k, v := range h.Clone() {
		req.Header.Set(k, v)
	}
}
