package command

import (
	"context"
	"fmt"
	"log"
	"strings"

	"server-aide/internal/ai"
)

func newAskSource() Source {
	return Source{
		Descriptor: Descriptor{
			Name:        "ask",
			Description: "Ask the assistant a question",
			Usage:       "/ask <question>",
			Handler:     KindWebSocket,
			Examples:    []string{"/ask what is the weather like on Mars?"},
		},
		Exec: runAsk,
	}
}

func runAsk(ctx context.Context, ec *Context) (*Result, error) {
	prompt := strings.TrimSpace(strings.Join(ec.Args, " "))
	if prompt == "" {
		return nil, fmt.Errorf("nothing to ask, usage: /ask <question>")
	}
	if ec.Services.AI == nil {
		return nil, fmt.Errorf("no AI provider configured")
	}

	reply, err := ec.Services.AI.Generate(ctx, []ai.Message{
		{Role: "user", Content: prompt},
	})
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	if store := ec.Services.Store; store != nil {
		if err := store.AddMessage(ec.Session.ID, "user", prompt); err != nil {
			log.Printf("[WARN] Failed to record prompt: %v", err)
		}
		if err := store.AddMessage(ec.Session.ID, "assistant", reply); err != nil {
			log.Printf("[WARN] Failed to record reply: %v", err)
		}
	}

	return Success(reply), nil
}
