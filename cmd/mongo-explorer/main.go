// Package main is the main file for mongo-explorer cli.
package main

import (
	"os"

	"github.com/percona/percona-mongo-explorer/commands"
	"github.com/percona/percona-mongo-explorer/pkg/logger"
)

func main() {
	l := logger.MustInitLogger(false).Sugar()

	rootCmd := commands.NewRootCmd(l)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
