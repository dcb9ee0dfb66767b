// Command apiserver runs the analysis API server with the configuration
// given by -config (or environment variables when omitted).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/teraseg/geoinsight/internal/config"
	"github.com/teraseg/geoinsight/internal/interfaces/cli"
)

func main() {
	configPath := flag.String("config", "", "path to the configuration file")
	flag.Parse()

	var (
		cfg *config.Config
		err error
	)
	if *configPath == "" {
		cfg, err = config.LoadFromEnv()
	} else {
		cfg, err = config.Load(*configPath)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	if err := cli.RunServer(context.Background(), cfg); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
