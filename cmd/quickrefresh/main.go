package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/cf-cookie-client/internal/client"
	"github.com/MKhiriev/cf-cookie-client/internal/logger"
)

func main() {
	log := logger.NewClientLogger("quickrefresh")

	app, err := client.NewApp(log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = app.RunQuick(ctx)
	if errors.Is(err, context.Canceled) {
		// Ctrl+C is a normal way to leave the loop.
		fmt.Println("\nInterrupted. Bye!")
		return
	}
	if err != nil {
		log.Fatal().Err(err).Msg("quick refresh error")
	}
}
