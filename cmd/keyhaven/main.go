// Package main is the entry point for the keyhaven CLI, a thin companion
// to the keyhaven-go SDK for exporting, reading and writing secrets from
// the shell.
package main

import (
	"os"

	"github.com/keyhaven/keyhaven-go/pkg/logger"
)

func main() {
	defer logger.Sync()
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
