// Command gate is the CLI client for the gate account service.
package main

import (
	"os"

	"github.com/arclight-labs/gate-cli/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
