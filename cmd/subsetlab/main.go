package main

import (
	"os"

	"github.com/glipR/languagelab-sub002/cmd/subsetlab/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
