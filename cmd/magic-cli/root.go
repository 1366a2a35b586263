package main

import (
	"github.com/magiclabs/magic-go/pkg/config"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	backendURL string
	apiKey     string
	headers    map[string]string
	debug      bool
}

func newRootCmd() *cobra.Command {
	f := &rootFlags{}
	cmd := &cobra.Command{
		Use:           "magic-cli",
		Short:         "Call Magic authentication and wallet RPC methods",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&f.configPath, "config", "c", "", "Path to a YAML, TOML or JSON config file")
	pf.StringVar(&f.backendURL, "backend", "", "Override the backend URL")
	pf.StringVar(&f.apiKey, "api-key", "", "Override the API key")
	pf.StringToStringVarP(&f.headers, "header", "H", nil, "Extra request header as name=value (repeatable)")
	pf.BoolVar(&f.debug, "debug", false, "Log every call at debug level")

	cmd.AddCommand(newMethodsCmd(), newCallCmd(f))
	return cmd
}

// load builds the effective configuration: file first, then flag overrides.
func (f *rootFlags) load() (*config.Config, error) {
	cfg := &config.Config{}
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return nil, err
		}
	}
	if f.backendURL != "" {
		cfg.BackendURL = f.backendURL
	}
	if f.apiKey != "" {
		cfg.APIKey = f.apiKey
	}
	if len(f.headers) > 0 {
		if cfg.Headers == nil {
			cfg.Headers = map[string]string{}
		}
		for k, v := range f.headers {
			cfg.Headers[k] = v
		}
	}
	if f.debug {
		cfg.Debug = true
	}
	return cfg, cfg.Validate()
}
