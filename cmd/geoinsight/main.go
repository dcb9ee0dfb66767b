// Command geoinsight is the CLI entrypoint: local analysis, server, and
// migration management.
package main

import (
	"fmt"
	"os"

	"github.com/teraseg/geoinsight/internal/interfaces/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
