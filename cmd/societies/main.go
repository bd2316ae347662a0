package main

import (
	"os"

	"github.com/tohsaka888/societies-server/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
