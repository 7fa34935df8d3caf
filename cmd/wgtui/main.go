package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"wgtui/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, app.Options{}); err != nil {
		fmt.Fprintf(os.Stderr, "wgtui: %v\n", err)
		return 1
	}
	return 0
}
