package chart

import (
	"sync"

	"github.com/pkg/errors"
)

var ErrStaleInstance = errors.New("chart: instance is staler than the current occupant")

// Registry maps render targets to their single live chart instance.
//
// Replace always releases the previous occupant before installing the new
// one, so repeated queries never accumulate instances or leave dangling
// charts drawing over each other. Instances carry monotonically increasing
// tokens; an instance built from an older query than the one already
// installed is rejected, which is how out-of-order responses from
// overlapping fetches are discarded.
type Registry struct {
	mu        sync.Mutex
	live      map[string]*Instance
	lastToken map[string]uint64
}

func NewRegistry() *Registry {
	return &Registry{
		live:      make(map[string]*Instance),
		lastToken: make(map[string]uint64),
	}
}

// Replace installs inst as the live instance for its target, releasing the
// prior occupant first. A stale instance is released immediately and
// ErrStaleInstance is returned.
func (r *Registry) Replace(inst *Instance) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if last, ok := r.lastToken[inst.Target]; ok && inst.Token < last {
		inst.Release()
		return errors.Wrapf(ErrStaleInstance, "target %s token %d < %d", inst.Target, inst.Token, last)
	}

	if prev, ok := r.live[inst.Target]; ok {
		prev.Release()
	}

	r.live[inst.Target] = inst
	r.lastToken[inst.Target] = inst.Token
	return nil
}

// Get returns the live instance for target, or nil.
func (r *Registry) Get(target string) *Instance {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.live[target]
}

// Release frees and removes the live instance for target, if any.
func (r *Registry) Release(target string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if inst, ok := r.live[target]; ok {
		inst.Release()
		delete(r.live, target)
	}
}

// Len returns the number of live instances.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.live)
}

// ReleaseAll frees every live instance.
func (r *Registry) ReleaseAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for target, inst := range r.live {
		inst.Release()
		delete(r.live, target)
	}
}
