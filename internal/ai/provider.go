package ai

import (
	"context"
	"fmt"
)

// Message is one turn of a conversation sent to a provider.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Provider generates a reply for a conversation. Implementations perform
// outbound network calls and must honor ctx cancellation.
type Provider interface {
	Generate(ctx context.Context, messages []Message) (string, error)
}

// New picks a provider by engine name.
func New(engine, apiKey, model string) (Provider, error) {
	switch engine {
	case "openai":
		if apiKey == "" {
			return nil, fmt.Errorf("openai provider requires OPENAI_API_KEY")
		}
		return NewOpenAIProvider(apiKey, model), nil
	case "pollinations", "":
		return NewPollinationsProvider(), nil
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s", engine)
	}
}
