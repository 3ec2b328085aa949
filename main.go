package main

import (
	"os"

	"github.com/appforge/appforge/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
