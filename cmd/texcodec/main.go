package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/andrewvc/texcodec/cmd/texcodec/cmd"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := cmd.NewRoot(ctx).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
