// Package main provides the entry point for the edec CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/athanorlabs/go-edec/internal/cli"
)

//nolint:gochecknoglobals // set via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.Execute(ctx, cli.BuildInfo{Version: version, Commit: commit, Date: date})
	stop()
	os.Exit(cli.ExitCodeForError(err))
}
