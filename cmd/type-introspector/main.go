// Package main provides the CLI entrypoint for type-introspector.
//
// type-introspector loads Go packages, translates their types into a
// metadata universe, and reports the answers structural comparison needs:
// member catalogs, semantic classification, annotations, conversion
// operators, and friendly display names.
package main

import (
	"fmt"
	"os"

	"type-introspector/internal/cli"
	"type-introspector/internal/logging"
)

var version = "dev"

func main() {
	cfg, err := cli.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if cfg.ShowVersion {
		fmt.Println(version)
		return
	}

	// Level validity is checked during flag parsing.
	level, _ := logging.ParseLevel(cfg.LogLevel)

	logger, logCleanup, err := logging.Setup(cfg.LogFile, level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to setup logging: %v\n", err)
		os.Exit(1)
	}
	defer logCleanup()

	runner := cli.NewRunner(os.Stdout, logger)
	if err := runner.Run(cfg); err != nil {
		logger.Error("run failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
