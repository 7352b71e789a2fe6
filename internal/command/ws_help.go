package command

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

func newHelpSource() Source {
	return Source{
		Descriptor: Descriptor{
			Name:        "help",
			Description: "List available commands",
			Usage:       "/help",
			Handler:     KindWebSocket,
			Examples:    []string{"/help"},
		},
		Exec: runHelp,
	}
}

func runHelp(ctx context.Context, ec *Context) (*Result, error) {
	if len(ec.Commands) == 0 {
		return Success("Available commands:\n  No commands found"), nil
	}

	names := make([]string, 0, len(ec.Commands))
	for name := range ec.Commands {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("Available commands:")
	for _, name := range names {
		d := ec.Commands[name]
		fmt.Fprintf(&b, "\n  %s — %s (%s)", d.Name, d.Description, d.Usage)
	}

	return SuccessData(b.String(), map[string]any{"commands": ec.Commands}), nil
}
