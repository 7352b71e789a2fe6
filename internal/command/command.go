// Package command is the transport-agnostic command core: declarative
// descriptors, a validated read-only registry, and a dispatcher that branches
// on where each command is allowed to run (client device, REST endpoint, or
// the server's real-time channel). Transports (gateway, REST, CLI) look up and
// dispatch; they never carry command semantics themselves.
package command

import "context"

// HandlerKind is the execution site of a command.
type HandlerKind string

const (
	// KindClient commands run on the calling device only and must never
	// execute server-side.
	KindClient HandlerKind = "client"
	// KindREST commands are answered by the REST surface; dispatch redirects
	// to the declared endpoints instead of executing.
	KindREST HandlerKind = "rest"
	// KindWebSocket commands execute server-side with a bound executor.
	KindWebSocket HandlerKind = "websocket"
)

// Valid reports whether k is one of the known handler kinds.
func (k HandlerKind) Valid() bool {
	switch k {
	case KindClient, KindREST, KindWebSocket:
		return true
	}
	return false
}

// RestOptions is the routing metadata a rest-kind command publishes for the
// REST surface. At least one endpoint must be set.
type RestOptions struct {
	GetEndpoint  string `json:"getEndpoint,omitempty"`
	PostEndpoint string `json:"postEndpoint,omitempty"`
	Method       string `json:"method,omitempty"`
}

// Descriptor is the immutable metadata record for one command. Descriptors are
// built once at startup and never mutated afterwards.
type Descriptor struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Usage       string       `json:"usage"`
	Handler     HandlerKind  `json:"handler"`
	Examples    []string     `json:"examples"`
	RequiresGUI bool         `json:"requiresGUI,omitempty"`
	RestOptions *RestOptions `json:"restOptions,omitempty"`
}

// Executor runs a websocket-kind command. It returns a result envelope or an
// error; both are normalized by the dispatcher. Blocking work must honor ctx
// so an invocation can be cancelled when its connection goes away.
type Executor func(ctx context.Context, ec *Context) (*Result, error)

// Source pairs a descriptor with its executor. Only websocket-kind sources
// bind an executor; the registry rejects anything else.
type Source struct {
	Descriptor Descriptor
	Exec       Executor
}
