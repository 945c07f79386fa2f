// Command primesieve writes every prime below 2^32 (or a lower limit) in
// increasing order, one decimal number per line.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"gopkg.in/alecthomas/kingpin.v2"
)

func main() {
	app := kingpin.New(filepath.Base(os.Args[0]), "Segmented Sieve of Eratosthenes over the 32-bit unsigned integers.").UsageWriter(os.Stderr)
	app.HelpFlag.Short('h')
	cfg := registerFlags(app)

	kingpin.MustParse(app.Parse(os.Args[1:]))

	handleBrokenPipe()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := checkError(run(ctx, cfg, os.Stdout, os.Stderr), os.Stderr)
	stop()
	os.Exit(code)
}

func checkError(err error, stderr io.Writer) int {
	switch {
	case err == nil:
		return 0
	case isBrokenPipe(err):
		// The reader went away; the listing it asked for is complete.
		return 0
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(stderr, "error: interrupted")
	default:
		fmt.Fprintf(stderr, "error: %v\n", err)
	}
	return 1
}
