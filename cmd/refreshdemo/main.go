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
	log := logger.NewClientLogger("refreshdemo")

	app, err := client.NewApp(log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = app.RunDemo(ctx)
	if errors.Is(err, context.Canceled) {
		fmt.Println("\nInterrupted. Bye!")
		return
	}
	if err != nil {
		log.Fatal().Err(err).Msg("demo run error")
	}
}
