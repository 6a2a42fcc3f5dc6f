package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"healthbot/internal/config"
	"healthbot/internal/engine"
	"healthbot/internal/metrics"
	"healthbot/internal/server"
)

func main() {
	cfg := config.Load()

	// Initialize the matching engine. A missing or malformed knowledge
	// base is not fatal: the service starts and answers with the
	// default response until the source is fixed.
	eng, result := engine.New(cfg.IntentsFile)
	switch result.Status {
	case engine.LoadOK:
		log.Printf("Loaded %d health topics from %s", result.Count, cfg.IntentsFile)
	case engine.LoadMissing:
		log.Printf("Warning: intents source %s not found, serving default responses only: %v", cfg.IntentsFile, result.Err)
	case engine.LoadMalformed:
		log.Printf("Warning: intents source %s is malformed, serving default responses only: %v", cfg.IntentsFile, result.Err)
	}

	metrics.Init(eng.TopicCount())

	srv := server.New(cfg)
	srv.RegisterRoutes(eng)

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
