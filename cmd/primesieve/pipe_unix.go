//go:build unix

package main

import (
	"errors"
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

// handleBrokenPipe turns SIGPIPE on stdout into an EPIPE write error
// so the run can end cleanly.
func handleBrokenPipe() {
	signal.Notify(make(chan os.Signal, 1), unix.SIGPIPE)
}

func isBrokenPipe(err error) bool {
	return errors.Is(err, unix.EPIPE)
}
