package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sidjay999/Secretsanta/internal/app"
	"github.com/sidjay999/Secretsanta/internal/config"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application, appErr := app.New(cfg)
	if appErr != nil {
		log.Fatalf("Failed to initialize application: %v", appErr)
	}

	application.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	application.Stop()
}
