// events.go defines the notifications a Registry sends to its observer.
//
// Events are fire-and-forget: an observer sees what happened after the fact
// and cannot change the outcome.

package interaction

// EventType identifies the kind of event.
type EventType string

const (
	// EventRefresh is sent after every scan of the extension directories.
	EventRefresh EventType = "registry:refresh"
	// EventMiss is sent when a lookup fails after its refresh.
	EventMiss EventType = "registry:get"
)

// Event describes one registry operation.
type Event struct {
	Type    EventType
	Target  string // id of a failed lookup
	Dirs    int    // directories scanned
	Count   int    // interactions cached
	Skipped int    // assets without a registered type
	Err     error
}

// Observer receives registry events. It runs with the registry locked and
// must not call back into it.
type Observer func(Event)

// Option configures a Registry.
type Option func(*Registry)

// WithObserver sends registry events to fn.
func WithObserver(fn Observer) Option {
	return func(r *Registry) { r.observe = fn }
}
