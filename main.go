package main

import (
	"os"

	"github.com/finlit/spellbook/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
