package main

import (
	"encoding/json"
	"fmt"

	"github.com/magiclabs/magic-go/pkg/sdk"
	"github.com/spf13/cobra"
)

func newCallCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "call METHOD [PARAM_JSON...]",
		Short: "Call one RPC method and print its result as JSON",
		Long: `Call one RPC method and print its result as JSON.

Each PARAM_JSON argument is parsed as a JSON value and appended to the
request's params array, e.g. '{"email":"a@b.c"}'.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseParams(args[1:])
			if err != nil {
				return err
			}

			cfg, err := f.load()
			if err != nil {
				return err
			}

			magic, err := sdk.NewSDK(cfg)
			if err != nil {
				return err
			}
			defer magic.Close()

			result, err := magic.Invoke(cmd.Context(), args[0], params...)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}
}

func parseParams(args []string) ([]any, error) {
	params := make([]any, 0, len(args))
	for i, a := range args {
		var v any
		if err := json.Unmarshal([]byte(a), &v); err != nil {
			return nil, fmt.Errorf("param %d is not valid JSON: %w", i+1, err)
		}
		params = append(params, v)
	}
	return params, nil
}
