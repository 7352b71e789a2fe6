package command

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"sync"
)

// newRollSource rolls dice in NdM notation. The random source is injected so
// tests can seed it; a mutex serializes draws since rand.Rand is not safe for
// concurrent use.
func newRollSource(rng *rand.Rand) Source {
	var mu sync.Mutex
	return Source{
		Descriptor: Descriptor{
			Name:        "roll",
			Description: "Roll dice",
			Usage:       "/roll [NdM]",
			Handler:     KindWebSocket,
			Examples:    []string{"/roll", "/roll 2d6"},
		},
		Exec: func(ctx context.Context, ec *Context) (*Result, error) {
			count, sides := 1, 6
			if len(ec.Args) > 0 {
				var err error
				count, sides, err = parseDice(ec.Args[0])
				if err != nil {
					return nil, err
				}
			}

			mu.Lock()
			rolls := make([]int, count)
			total := 0
			for i := range rolls {
				rolls[i] = rng.Intn(sides) + 1
				total += rolls[i]
			}
			mu.Unlock()

			return SuccessData(fmt.Sprintf("🎲 Rolled %dd%d: %d", count, sides, total), map[string]any{
				"rolls": rolls,
				"total": total,
			}), nil
		},
	}
}

func parseDice(spec string) (count, sides int, err error) {
	parts := strings.SplitN(strings.ToLower(spec), "d", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("bad dice spec %q, expected NdM", spec)
	}
	count, err = strconv.Atoi(parts[0])
	if err != nil || count < 1 || count > 100 {
		return 0, 0, fmt.Errorf("bad dice count in %q", spec)
	}
	sides, err = strconv.Atoi(parts[1])
	if err != nil || sides < 2 || sides > 1000 {
		return 0, 0, fmt.Errorf("bad dice sides in %q", spec)
	}
	return count, sides, nil
}
