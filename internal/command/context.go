package command

import (
	"time"

	"server-aide/internal/ai"
	"server-aide/internal/storage"
)

// SessionInfo identifies the caller behind one invocation.
type SessionInfo struct {
	ID      string
	Remote  string
	Started time.Time
}

// Services bundles the shared backend handles executors may use. The handles
// themselves are safe for concurrent use; Services is copied into each
// context by value.
type Services struct {
	Store *storage.Storage
	AI    ai.Provider
}

// Context is the per-invocation input bundle passed to an executor. It is
// assembled fresh for every call, never shared across invocations, and
// discarded when the invocation completes.
type Context struct {
	Session  SessionInfo
	Services Services
	// Commands is the full registry snapshot so introspective commands (help)
	// can render complete, consistent metadata.
	Commands map[string]Descriptor
	// Received is when the invocation entered the server.
	Received time.Time
	// Args are the raw invocation arguments; shape validation is the
	// executor's own business.
	Args []string
}

// BuildContext assembles an execution context. Pure assembly, no I/O; Args is
// filled in by the dispatcher per call.
func BuildContext(session SessionInfo, snapshot map[string]Descriptor, services Services) *Context {
	return &Context{
		Session:  session,
		Services: services,
		Commands: snapshot,
		Received: time.Now(),
	}
}
