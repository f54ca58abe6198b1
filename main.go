package main

import (
	"os"

	"github.com/licitia/licitia/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
