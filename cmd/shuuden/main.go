// Package main provides the shuuden command-line client.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/shuuden/shuuden/internal/cli"
)

// Version is set at compile time via ldflags.
var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.Execute(ctx, Version)
}
