package main

import (
	"os"

	"github.com/avasseur/fitcoach-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
