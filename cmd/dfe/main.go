package main

import (
	"os"

	"github.com/bnema/devicefarm-e2e/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
