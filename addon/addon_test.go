package addon

import (
	"reflect"
	"testing"

	"hushnotice/notice"
)

type memStore struct {
	enabled bool
	ok      bool
}

func (s *memStore) Load() (enabled, ok bool) { return s.enabled, s.ok }

func (s *memStore) Save(enabled bool) error {
	s.enabled = enabled
	s.ok = true
	return nil
}

func announceHandler(notice.Event) {}
func formatHandler(notice.Event)   {}

func handlerPtr(h notice.Handler) uintptr {
	return reflect.ValueOf(h).Pointer()
}

func newHost(store notice.StateStore) (*Addon, *notice.HandlerMap, *notice.HandlerMap) {
	chatSystem := notice.NewHandlerMap()
	chatRouter := notice.NewHandlerMap()
	chatSystem.SetHandler(notice.FriendStatus, announceHandler)
	chatRouter.SetHandler(notice.FriendStatus, formatHandler)

	ctrl := notice.New(chatSystem, chatRouter, store)
	return New("hushnotice", ctrl), chatSystem, chatRouter
}

func TestLoadSignalFiresOnce(t *testing.T) {
	a, _, _ := newHost(&memStore{})
	bus := NewBus()
	a.Bind(bus)

	if a.State() != AwaitingHostLoad {
		t.Fatalf("Bound addon should await the host load, got %s", a.State())
	}

	bus.Dispatch("someotheraddon")
	if a.State() != AwaitingHostLoad {
		t.Fatal("Load signal for another addon must not initialize")
	}
	if len(bus.subs) != 1 {
		t.Fatal("Non-matching signal must not remove the subscription")
	}

	bus.Dispatch("hushnotice")
	if a.State() != Initialized {
		t.Fatal("Matching load signal should initialize the addon")
	}
	if len(bus.subs) != 0 {
		t.Fatal("Matching signal should remove the subscription")
	}

	// Synthesize a second matching signal; the controller must not
	// re-capture handlers.
	a.Controller().Toggle()
	bus.Dispatch("hushnotice")

	if a.Controller().Enabled() {
		t.Error("Second load signal changed the flag")
	}
}

func TestFreshStartThenToggle(t *testing.T) {
	a, chatSystem, chatRouter := newHost(&memStore{})
	bus := NewBus()
	a.Bind(bus)
	bus.Dispatch("hushnotice")

	noop := handlerPtr(notice.Handler(notice.Noop))

	if handlerPtr(chatSystem.Handler(notice.FriendStatus)) != noop ||
		handlerPtr(chatRouter.Handler(notice.FriendStatus)) != noop {
		t.Fatal("Fresh start should leave both registries suppressed")
	}

	hidden := a.Controller().Toggle()

	if hidden {
		t.Error("Toggle from the default should report shown")
	}
	if handlerPtr(chatSystem.Handler(notice.FriendStatus)) != handlerPtr(notice.Handler(announceHandler)) {
		t.Error("Toggle should restore the captured chat system handler")
	}
	if handlerPtr(chatRouter.Handler(notice.FriendStatus)) != handlerPtr(notice.Handler(formatHandler)) {
		t.Error("Toggle should restore the captured chat router handler")
	}
}

func TestPersistedShownStateAtStartup(t *testing.T) {
	a, chatSystem, chatRouter := newHost(&memStore{enabled: false, ok: true})
	bus := NewBus()
	a.Bind(bus)
	bus.Dispatch("hushnotice")

	// No command needed: the persisted flag applies at initialization.
	if handlerPtr(chatSystem.Handler(notice.FriendStatus)) != handlerPtr(notice.Handler(announceHandler)) {
		t.Error("Persisted shown state should keep the chat system original active")
	}
	if handlerPtr(chatRouter.Handler(notice.FriendStatus)) != handlerPtr(notice.Handler(formatHandler)) {
		t.Error("Persisted shown state should keep the chat router original active")
	}
}

func TestBusUnsubscribeUnknownToken(t *testing.T) {
	bus := NewBus()

	fired := 0
	token := bus.Subscribe(func(name string) { fired++ })

	bus.Unsubscribe(token)
	bus.Unsubscribe(token)
	bus.Dispatch("hushnotice")

	if fired != 0 {
		t.Error("Unsubscribed handler fired")
	}
}
