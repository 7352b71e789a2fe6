// cmd/aide/main.go
package main

import (
	"context"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"server-aide/internal/ai"
	"server-aide/internal/command"
	"server-aide/internal/config"
	"server-aide/internal/gateway"
	"server-aide/internal/rest"
	"server-aide/internal/storage"
	v "server-aide/internal/version"
)

func main() {
	log.Printf("[INFO] Starting %v server...", v.AppName)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.New()

	store, err := storage.New(cfg.StoragePath)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	provider, err := ai.New(cfg.AIProvider, cfg.OpenAIKey, cfg.OpenAIModel)
	if err != nil {
		log.Fatal(err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	reg, err := command.Load(command.BuiltinSources(rng))
	if err != nil {
		// A bad descriptor must never serve traffic.
		log.Fatalf("[ERR] %v", err)
	}
	log.Printf("[INFO] Loaded %d commands", reg.Len())

	services := command.Services{Store: store, AI: provider}
	disp := command.NewDispatcher(reg)

	errCh := make(chan error, 2)
	go func() {
		if err := gateway.New(disp, services).Run(ctx, cfg.ListenAddr); err != nil {
			errCh <- err
		}
	}()
	go func() {
		if err := rest.New(reg, store).Run(ctx, cfg.RESTAddr); err != nil {
			errCh <- err
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Printf("[INFO] Received signal %s, shutting down...\n", s)
		cancel()
	case err := <-errCh:
		if err != nil {
			log.Println("[ERR] Server error:", err)
		}
		cancel()
	case <-ctx.Done():
	}

	log.Println("[INFO] Server exited cleanly")
}
