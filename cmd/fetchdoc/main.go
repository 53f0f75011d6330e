package main

import (
	"os"

	"github.com/oldgaffers/fetch-doc/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
