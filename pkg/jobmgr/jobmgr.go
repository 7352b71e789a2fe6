// Package jobmgr tracks named cancellable units of work. The gateway uses it
// to guarantee at most one in-flight invocation per request id and to cancel
// everything still running when a connection goes away.
//
// Typical usage:
//
//	jm := jobmgr.NewManager()
//	err := jm.StartSync(ctx, reqID, func(ctx context.Context) error {
//	    // do work until ctx is cancelled
//	    return nil
//	})
//	// on disconnect:
//	jm.StopAll()
package jobmgr

import (
	"context"
	"fmt"
	"sync"
)

// Manager tracks running jobs by name. Safe for concurrent use.
type Manager struct {
	mu   sync.Mutex
	jobs map[string]context.CancelFunc
}

// NewManager creates an empty Manager.
func NewManager() *Manager {
	return &Manager{jobs: make(map[string]context.CancelFunc)}
}

// StartSync runs the job in the current goroutine, blocking until it returns.
// The runner's context is cancelled if Stop/StopAll is called or the parent
// ctx ends. Starting a second job under a name still running is an error.
func (m *Manager) StartSync(ctx context.Context, name string, runner func(ctx context.Context) error) error {
	m.mu.Lock()
	if _, busy := m.jobs[name]; busy {
		m.mu.Unlock()
		return fmt.Errorf("job %q already running", name)
	}
	jctx, cancel := context.WithCancel(ctx)
	m.jobs[name] = cancel
	m.mu.Unlock()

	defer func() {
		cancel()
		m.mu.Lock()
		delete(m.jobs, name)
		m.mu.Unlock()
	}()

	return runner(jctx)
}

// Stop cancels the named job if it is running.
func (m *Manager) Stop(name string) bool {
	m.mu.Lock()
	cancel, ok := m.jobs[name]
	m.mu.Unlock()
	if ok {
		cancel()
	}
	return ok
}

// StopAll cancels every running job.
func (m *Manager) StopAll() {
	m.mu.Lock()
	cancels := make([]context.CancelFunc, 0, len(m.jobs))
	for _, cancel := range m.jobs {
		cancels = append(cancels, cancel)
	}
	m.mu.Unlock()
	for _, cancel := range cancels {
		cancel()
	}
}

// Running returns the names of jobs currently in flight.
func (m *Manager) Running() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	names := make([]string, 0, len(m.jobs))
	for name := range m.jobs {
		names = append(names, name)
	}
	return names
}
