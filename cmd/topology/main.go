package main

import (
	"os"

	"github.com/drkbts/topology/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
