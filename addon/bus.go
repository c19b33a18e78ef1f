package addon

import (
	"github.com/google/uuid"
)

// LoadFunc receives the name carried by an addon-loaded signal. Every
// subscriber sees every signal; filtering by name is the subscriber's job.
type LoadFunc func(name string)

type subscription struct {
	token uuid.UUID
	fn    LoadFunc
}

// Bus delivers addon-loaded signals. The host dispatches one signal per
// addon once that addon's code and saved data are available.
type Bus struct {
	subs []subscription
}

func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers fn for all future load signals and returns the token
// needed to unsubscribe.
func (b *Bus) Subscribe(fn LoadFunc) uuid.UUID {
	token := uuid.New()
	b.subs = append(b.subs, subscription{token: token, fn: fn})
	return token
}

// Unsubscribe removes the subscription with the given token. Unknown tokens
// are ignored.
func (b *Bus) Unsubscribe(token uuid.UUID) {
	for i, sub := range b.subs {
		if sub.token == token {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return
		}
	}
}

// Dispatch delivers a load signal for the named addon to every current
// subscriber. Subscribers may unsubscribe while being notified.
func (b *Bus) Dispatch(name string) {
	subs := make([]subscription, len(b.subs))
	copy(subs, b.subs)

	for _, sub := range subs {
		sub.fn(name)
	}
}
