package main

import (
	"os"

	"github.com/msto63/unitx/cmd/unitx/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
