package main

import (
	"os"

	"github.com/charmbracelet/log"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "swole"})

	path, err := DefaultStatePath()
	if err != nil {
		fatal(logger, err)
	}
	tracker := NewTracker(NewStore(path), logger)

	if err := newRootCmd(tracker).Execute(); err != nil {
		fatal(logger, err)
	}
}

func fatal(logger *log.Logger, err error) {
	logger.Error(err)
	os.Exit(1)
}
