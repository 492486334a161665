package main

import (
	"os"

	"github.com/lovromazgon/calc/cmd/calc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
