package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/magiclabs/magic-go/pkg/sdk"
	"github.com/spf13/cobra"
)

const (
	outputFlagName     = "output"
	outputFlagValJSON  = "json"
	outputFlagValHuman = "human"
)

func paramsLabel(k sdk.ParamKind) string {
	switch k {
	case sdk.ParamsOptionalConfig:
		return "[config?]"
	case sdk.ParamsConfig:
		return "[config]"
	default:
		return "[]"
	}
}

func newMethodsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "methods",
		Short: "List the RPC methods the SDK knows about",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			output, err := cmd.Flags().GetString(outputFlagName)
			if err != nil {
				return err
			}

			switch output {
			case outputFlagValHuman:
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "METHOD\tPARAMS\tRESULT\tAUTH ONLY")
				for _, m := range sdk.Methods {
					fmt.Fprintf(w, "%s\t%s\t%s\t%t\n", m.Method, paramsLabel(m.Params), m.Result, m.AuthOnly)
				}
				return w.Flush()
			case outputFlagValJSON:
				type row struct {
					Method   string `json:"method"`
					Params   string `json:"params"`
					Result   string `json:"result"`
					AuthOnly bool   `json:"auth_only"`
				}
				rows := make([]row, 0, len(sdk.Methods))
				for _, m := range sdk.Methods {
					rows = append(rows, row{string(m.Method), paramsLabel(m.Params), m.Result.String(), m.AuthOnly})
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(rows)
			default:
				return fmt.Errorf("%s flag must be either %q or %q", outputFlagName, outputFlagValHuman, outputFlagValJSON)
			}
		},
	}
	cmd.Flags().StringP(outputFlagName, "o", outputFlagValHuman, "Specify the output format: json,human")
	return cmd
}
