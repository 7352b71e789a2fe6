// cmd/cli/main.go
//
// One-shot local dispatch for smoke checks:
//
//	go run ./cmd/cli ping
//	go run ./cmd/cli help
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"server-aide/internal/ai"
	"server-aide/internal/command"
	"server-aide/internal/config"
	"server-aide/internal/storage"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: cli <command> [args...]")
		os.Exit(2)
	}

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
		log.Fatalf("[ERR] %v", err)
	}

	disp := command.NewDispatcher(reg)
	ec := command.BuildContext(
		command.SessionInfo{ID: "cli", Remote: "local", Started: time.Now()},
		reg.Snapshot(),
		command.Services{Store: store, AI: provider},
	)

	res := disp.Dispatch(context.Background(), os.Args[1], os.Args[2:], ec)

	out, _ := json.MarshalIndent(res, "", "  ")
	fmt.Println(string(out))
	if res.Status != command.StatusSuccess {
		os.Exit(1)
	}
}
