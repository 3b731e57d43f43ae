// catalog.go holds the compile-time list of interaction types.
//
// Interaction packages call Register from init(), before main() runs. The
// Registry consults the catalog when it discovers an asset named after a
// type; assets with no registered type are not interactions.
//
// Register panics on duplicates following database/sql.Register, and keeps
// registration order so listings are deterministic.

package interaction

import "sync"

// Factory constructs a fresh instance of an interaction type. A factory that
// returns nil, or a nil pointer, fails the refresh that calls it.
type Factory func() Interaction

var (
	catalogMu sync.RWMutex
	catalog   = make(map[string]Factory)
	order     []string // preserve registration order
)

// Register adds an interaction type to the catalog under name. The name is
// the id the interaction is stored under once discovered, and the stem of
// its HTML asset.
//
// Registration happens at init time, so a bad name or duplicate is a
// programmer error and panics.
func Register(name string, f Factory) {
	if name == "" {
		panic("interaction: Register with empty name")
	}
	if f == nil {
		panic("interaction: Register factory is nil for " + name)
	}

	catalogMu.Lock()
	defer catalogMu.Unlock()

	if _, exists := catalog[name]; exists {
		panic("interaction: already registered: " + name)
	}
	catalog[name] = f
	order = append(order, name)
}

// Registered returns the names of all registered types in registration order.
func Registered() []string {
	catalogMu.RLock()
	defer catalogMu.RUnlock()

	names := make([]string, len(order))
	copy(names, order)
	return names
}

// IsRegistered reports whether a type was registered under name.
func IsRegistered(name string) bool {
	_, ok := lookup(name)
	return ok
}

func lookup(name string) (Factory, bool) {
	catalogMu.RLock()
	defer catalogMu.RUnlock()
	f, ok := catalog[name]
	return f, ok
}
