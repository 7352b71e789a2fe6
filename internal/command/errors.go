package command

import "fmt"

// DiscoveryError reports a malformed or duplicate descriptor found while
// loading the registry. It is startup-fatal: the process must not serve
// traffic with a partially loaded registry.
type DiscoveryError struct {
	Source string // descriptor name, or its position when the name is missing
	Reason string
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("command discovery: %s: %s", e.Source, e.Reason)
}

// UnknownCommandError marks an invocation naming a command absent from the
// registry. Non-fatal; yields one error envelope.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command %q", e.Name)
}

// RoutingError marks a client-kind command that reached server-side dispatch.
// Treated as a client/config bug, not a server fault.
type RoutingError struct {
	Name string
}

func (e *RoutingError) Error() string {
	return fmt.Sprintf("command %q is client-only and cannot run server-side", e.Name)
}

// ExecutionError wraps a fault raised inside an executor. Caught at the
// dispatcher boundary and mapped to an error envelope.
type ExecutionError struct {
	Name string
	Err  error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("command %q failed: %v", e.Name, e.Err)
}

func (e *ExecutionError) Unwrap() error { return e.Err }
