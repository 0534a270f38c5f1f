package main

import (
	"os"

	"github.com/mariakhr/go-scheme/cmd/scheme/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
