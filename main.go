package main

import (
	"os"

	"github.com/angeloflores/folio/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
