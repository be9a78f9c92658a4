package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/thenoetrevino/roster/cmd"
)

func main() {
	// Cancel in-flight store calls on Ctrl-C
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)

	code := cmd.Execute(ctx)
	cancel()
	os.Exit(code)
}
