package command

import (
	"context"
	"fmt"
	"log"
)

// Dispatcher resolves an invocation against the registry and branches on
// handler kind. It always produces exactly one Result; no executor fault or
// panic escapes past it, so one failing invocation never takes down the
// dispatching task or its siblings.
type Dispatcher struct {
	reg *Registry
}

// NewDispatcher wraps a loaded registry. The registry is read-only, so one
// dispatcher serves any number of concurrent invocations.
func NewDispatcher(reg *Registry) *Dispatcher {
	return &Dispatcher{reg: reg}
}

// Registry returns the registry this dispatcher serves.
func (d *Dispatcher) Registry() *Registry { return d.reg }

// Dispatch routes one invocation: resolve name, branch on kind, normalize the
// outcome. ec must be a fresh per-invocation context; its Args are set here.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, args []string, ec *Context) *Result {
	src, ok := d.reg.Get(name)
	if !ok {
		return Failure("command not found", &UnknownCommandError{Name: name})
	}

	switch src.Descriptor.Handler {
	case KindClient:
		// A client-only command reaching the server is a routing defect on
		// the caller's side. Log it, answer with an error envelope, keep
		// serving.
		err := &RoutingError{Name: name}
		log.Printf("[WARN] %v (session %s)", err, ec.Session.ID)
		return Failure(fmt.Sprintf("command %q runs on the client only", name), err)

	case KindREST:
		// Not an error: the command is served elsewhere. Republish its
		// routing metadata so the caller can follow it.
		return SuccessData(
			fmt.Sprintf("command %q is served over REST", name),
			map[string]any{"redirect": src.Descriptor.RestOptions},
		)

	default: // KindWebSocket; Load guarantees an executor is bound
		return d.execute(ctx, src, args, ec)
	}
}

// execute invokes the bound executor with full fault isolation: errors and
// panics are both mapped into an error envelope.
func (d *Dispatcher) execute(ctx context.Context, src Source, args []string, ec *Context) (res *Result) {
	name := src.Descriptor.Name
	ec.Args = args

	defer func() {
		if r := recover(); r != nil {
			err := &ExecutionError{Name: name, Err: fmt.Errorf("panic: %v", r)}
			log.Printf("[ERR] %v", err)
			res = Failure(fmt.Sprintf("command %q failed", name), err)
		}
	}()

	out, err := src.Exec(ctx, ec)
	if err != nil {
		execErr := &ExecutionError{Name: name, Err: err}
		log.Printf("[ERR] %v", execErr)
		return Failure(fmt.Sprintf("command %q failed", name), execErr)
	}
	if out == nil {
		err := &ExecutionError{Name: name, Err: fmt.Errorf("executor returned no result")}
		log.Printf("[ERR] %v", err)
		return Failure(fmt.Sprintf("command %q failed", name), err)
	}
	return out
}
