// Package rpcstub provides an in-process HTTP backend that speaks the SDK's
// JSON-RPC dialect. It records every request it receives so tests can assert
// on methods, params and headers.
package rpcstub

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
)

// Request is one request as seen by the stub.
type Request struct {
	Method string          `json:"method"`
	Params json.RawMessage `json:"params"`
	Header http.Header     `json:"-"`
	Body   []byte          `json:"-"`
}

// Reply describes how the stub answers a request.
type Reply struct {
	Status int
	Body   []byte
	Delay  time.Duration
}

// Handler chooses the reply for a request.
type Handler func(Request) Reply

// Result replies 200 with {"result": v}.
func Result(v any) Reply {
	b, err := json.Marshal(map[string]any{"result": v})
	if err != nil {
		panic(fmt.Sprintf("rpcstub: marshal result: %v", err))
	}
	return Reply{Status: http.StatusOK, Body: b}
}

// Raw replies with an arbitrary status and body.
func Raw(status int, body string) Reply {
	return Reply{Status: status, Body: []byte(body)}
}

// Routes answers by RPC method name and replies 404 for anything else.
func Routes(routes map[string]Reply) Handler {
	return func(r Request) Reply {
		if reply, ok := routes[r.Method]; ok {
			return reply
		}
		return Raw(http.StatusNotFound, `{"error":{"code":-32601,"message":"method not found"}}`)
	}
}

// Server is a running stub backend.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	handler  Handler
	requests []Request
}

// New starts a stub server and registers its shutdown with t.Cleanup.
// The test is skipped when the sandbox forbids listening sockets.
func New(t testing.TB, h Handler) *Server {
	t.Helper()
	s := &Server{handler: h}
	s.Server = start(t, http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)
	return s
}

func start(t testing.TB, handler http.Handler) (srv *httptest.Server) {
	t.Helper()
	defer func() {
		if r := recover(); r != nil {
			msg := fmt.Sprint(r)
			if strings.Contains(msg, "operation not permitted") {
				t.Skip("network operations not permitted in sandbox")
			}
			panic(r)
		}
	}()
	return httptest.NewServer(handler)
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	req := Request{Header: r.Header.Clone(), Body: body}
	_ = json.Unmarshal(body, &req)

	s.mu.Lock()
	s.requests = append(s.requests, req)
	h := s.handler
	s.mu.Unlock()

	reply := h(req)
	if reply.Delay > 0 {
		time.Sleep(reply.Delay)
	}
	if reply.Status == 0 {
		reply.Status = http.StatusOK
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(reply.Status)
	_, _ = w.Write(reply.Body)
}

// Requests returns a copy of everything received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// Last returns the most recent request, or false if none arrived yet.
func (s *Server) Last() (Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return Request{}, false
	}
	return s.requests[len(s.requests)-1], true
}
