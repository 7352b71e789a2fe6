package command

import (
	"fmt"
	"sort"
)

// Registry is the immutable name → source mapping built by Load. After a
// successful load it exposes only read operations, so concurrent readers need
// no locking.
type Registry struct {
	entries map[string]Source
}

// Load validates every source and builds the registry. Any schema violation
// or duplicate name aborts the whole load with a *DiscoveryError naming the
// offender; no partial registry is ever returned.
func Load(sources []Source) (*Registry, error) {
	entries := make(map[string]Source, len(sources))
	for i, src := range sources {
		if err := validate(i, src); err != nil {
			return nil, err
		}
		name := src.Descriptor.Name
		if _, dup := entries[name]; dup {
			return nil, &DiscoveryError{Source: name, Reason: "duplicate command name"}
		}
		entries[name] = src
	}
	return &Registry{entries: entries}, nil
}

func validate(pos int, src Source) error {
	d := src.Descriptor
	label := d.Name
	if label == "" {
		label = fmt.Sprintf("source #%d", pos)
	}
	fail := func(reason string) error {
		return &DiscoveryError{Source: label, Reason: reason}
	}

	if d.Name == "" {
		return fail("missing name")
	}
	if d.Description == "" {
		return fail("missing description")
	}
	if d.Usage == "" {
		return fail("missing usage")
	}
	if len(d.Examples) == 0 {
		return fail("missing examples")
	}
	if !d.Handler.Valid() {
		return fail(fmt.Sprintf("unknown handler kind %q", d.Handler))
	}

	switch d.Handler {
	case KindWebSocket:
		if src.Exec == nil {
			return fail("websocket command has no bound executor")
		}
	case KindREST:
		if d.RestOptions == nil {
			return fail("rest command has no restOptions")
		}
		if d.RestOptions.GetEndpoint == "" && d.RestOptions.PostEndpoint == "" {
			return fail("rest command declares no endpoints")
		}
		if src.Exec != nil {
			return fail("rest command must not bind an executor")
		}
	case KindClient:
		if src.Exec != nil {
			return fail("client command must not bind an executor")
		}
	}
	return nil
}

// Get returns the source registered under name.
func (r *Registry) Get(name string) (Source, bool) {
	src, ok := r.entries[name]
	return src, ok
}

// List returns all descriptors sorted by name.
func (r *Registry) List() []Descriptor {
	out := make([]Descriptor, 0, len(r.entries))
	for _, src := range r.entries {
		out = append(out, src.Descriptor)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Snapshot returns a fresh name → descriptor map for introspective commands.
// Callers own the returned map; the registry itself is never exposed for
// mutation.
func (r *Registry) Snapshot() map[string]Descriptor {
	out := make(map[string]Descriptor, len(r.entries))
	for name, src := range r.entries {
		out[name] = src.Descriptor
	}
	return out
}

// Len returns the number of registered commands.
func (r *Registry) Len() int { return len(r.entries) }
