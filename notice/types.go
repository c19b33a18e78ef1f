package notice

import "time"

// FriendStatus is the event key both registries use for friend
// login/logout notifications.
const FriendStatus = "FRIEND_STATUS"

// Event is the payload delivered to friend-status handlers.
type Event struct {
	Network string
	Friend  string
	Online  bool
	At      time.Time
}

// Handler is anything invokable with a friend-status event. Both the
// suppressing no-op and the host's own handlers are plain Handlers.
type Handler func(Event)

// Noop is the suppressing handler. It is installed into both registries
// while notices are hidden.
func Noop(Event) {}

// Registry is a host-managed mapping from event key to the currently
// active handler for that event.
type Registry interface {
	Handler(event string) Handler
	SetHandler(event string, h Handler)
}

// StateStore persists the suppression flag across restarts.
type StateStore interface {
	Load() (enabled, ok bool)
	Save(enabled bool) error
}
