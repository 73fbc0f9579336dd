package main

import (
	"os"

	"stockana/cmd/stockana/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
