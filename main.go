package main

import (
	"os"

	"github.com/tkoehler/skyprep/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
