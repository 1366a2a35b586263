package rpc

// Request is a single JSON-RPC style call. It is built once per operation and
// must not be modified after it has been handed to a Pipeline.
type Request struct {
	Method string `json:"method"`
	Params []any  `json:"params"`
}

// NewRequest builds a Request. Params always encode as a JSON array, so a
// call without parameters is sent as "params": [].
func NewRequest(method string, params ...any) Request {
	if params == nil {
		params = []any{}
	}
	return Request{Method: method, Params: params}
}
