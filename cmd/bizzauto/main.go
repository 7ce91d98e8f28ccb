package main

import (
	"os"

	"github.com/bizzauto/gateway/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
