package command

import (
	"context"
	"time"
)

func newPingSource() Source {
	return Source{
		Descriptor: Descriptor{
			Name:        "ping",
			Description: "Check server responsiveness",
			Usage:       "/ping",
			Handler:     KindWebSocket,
			Examples:    []string{"/ping"},
		},
		Exec: func(ctx context.Context, ec *Context) (*Result, error) {
			latency := time.Since(ec.Received)
			if latency < 0 {
				latency = 0
			}
			return SuccessData("pong", map[string]any{
				"latency_ms": float64(latency.Microseconds()) / 1000.0,
			}), nil
		},
	}
}
