package main

import (
	"os"

	"twosum/cmd/twosum/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
