// Package config provides configuration management for the Magic Go SDK.
//
// # Basic Configuration
//
// A zero Config is usable; Validate fills in the backend endpoint and the
// console log format:
//
//	cfg := &config.Config{
//		APIKey: "pk_live_XXXXXXXX",
//	}
//	if err := cfg.Validate(); err != nil {
//		log.Fatal(err)
//	}
//
// # Headers
//
// APIKey is sent as X-Magic-API-Key. Anything in Headers is merged into the
// SDK's shared header set at initialization; the set can be changed later
// through sdk.SDK.Headers() and the change applies to every following call.
//
// # Logging
//
// LogFormat is evaluated once when the SDK is built:
//
//	console - human-readable lines for terminals and development
//	json    - structured lines for log collectors
//
// Debug lowers the level to debug, which logs every call with its duration.
//
// # Rate Limiting
//
// RateLimit throttles outgoing requests with a token bucket. It is disabled
// by default. Requests are never retried, whether throttled or not.
//
// # Timeouts
//
// The SDK imposes no deadline of its own. Timeouts.Request, when non-zero,
// becomes the http.Client timeout for every request.
//
// # Loading From Files
//
// Load reads YAML, TOML or JSON based on the file extension:
//
//	# magic.yaml
//	backend_url: https://box.magic.link
//	api_key: pk_live_XXXXXXXX
//	log_format: json
//	headers:
//	  X-Client-Name: my-app
//	timeouts:
//	  request: 15s
//
//	cfg, err := config.Load("magic.yaml")
package config
