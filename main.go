package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/abhisek/middlemath/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cmd.ExitCode(cmd.Execute(ctx))
	stop()
	os.Exit(code)
}
