package main

import (
	"os"

	"github.com/rustpress-net/almanac/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
