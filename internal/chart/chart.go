// Package chart draws the dashboard's charts as terminal text. A chart is
// a Handle that must be destroyed before it is replaced; Registry enforces
// that for the named chart slots of the dashboard.
package chart

import (
	"sort"
	"sync"
)

// Handle is a drawable chart. Render on a destroyed handle returns "".
type Handle interface {
	Render(width int) string
	Destroy()
	Destroyed() bool
}

// Chart slot names.
const (
	Traffic  = "traffic"
	Category = "category"
	Campaign = "campaign"
)

// Registry owns one handle per name.
type Registry struct {
	mu      sync.Mutex
	handles map[string]Handle
}

func NewRegistry() *Registry {
	return &Registry{handles: make(map[string]Handle)}
}

// Replace destroys the handle currently under name, if any, and installs h.
func (r *Registry) Replace(name string, h Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if old, ok := r.handles[name]; ok && old != h {
		old.Destroy()
	}
	r.handles[name] = h
}

// Get returns the live handle for name.
func (r *Registry) Get(name string) (Handle, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.handles[name]
	return h, ok
}

// Names lists installed slots in order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.handles))
	for n := range r.handles {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Close destroys every handle and empties the registry.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for name, h := range r.handles {
		h.Destroy()
		delete(r.handles, name)
	}
}

type lifecycle struct {
	mu        sync.Mutex
	destroyed bool
}

func (l *lifecycle) Destroy() {
	l.mu.Lock()
	l.destroyed = true
	l.mu.Unlock()
}

func (l *lifecycle) Destroyed() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.destroyed
}
