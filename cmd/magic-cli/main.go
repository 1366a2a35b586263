// Command magic-cli calls Magic backend RPC methods from the command line.
//
//	magic-cli methods
//	magic-cli call magic_auth_is_logged_in --config magic.yaml
//	magic-cli call magic_auth_update_email '{"email":"a@b.c"}' -H X-Session=abc
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
