package main

import (
	"os"

	"github.com/mlworkbench/jobctl/cmd/jobctl/cmd"
	"github.com/mlworkbench/jobctl/internal/common"
)

func main() {
	common.ConfigureCommandLineLogging()
	if err := cmd.RootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
