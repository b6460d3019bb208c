// Package main is the entry point for the pinyinseg CLI.
package main

import (
	"os"

	"github.com/f3rmion/pinyinseg/cmd/pinyinseg/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
