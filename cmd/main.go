package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/wgomg/digest/internal/cli"
	"github.com/wgomg/digest/internal/utils"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := cli.RootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		log := utils.NewLogger("error", false)
		log.Fatal("Error: ", err)
	}
}
