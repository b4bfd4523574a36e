package main

import (
	"os"

	"github.com/layoutdev/layout/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
