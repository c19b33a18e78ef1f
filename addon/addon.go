package addon

import (
	"github.com/google/uuid"

	"hushnotice/logger"
	"hushnotice/notice"
)

// State tracks the addon through host startup.
type State int

const (
	Unloaded State = iota
	AwaitingHostLoad
	Initialized
)

func (s State) String() string {
	switch s {
	case AwaitingHostLoad:
		return "awaiting host load"
	case Initialized:
		return "initialized"
	default:
		return "unloaded"
	}
}

// Addon ties a named controller to the host's load signal. The controller is
// initialized exactly once, when the bus delivers a signal carrying this
// addon's own name.
type Addon struct {
	name  string
	ctrl  *notice.Controller
	bus   *Bus
	token uuid.UUID
	state State
}

func New(name string, ctrl *notice.Controller) *Addon {
	return &Addon{
		name: name,
		ctrl: ctrl,
	}
}

// Bind registers interest in load signals on the given bus.
func (a *Addon) Bind(bus *Bus) {
	a.bus = bus
	a.token = bus.Subscribe(a.onLoad)
	a.state = AwaitingHostLoad
}

// onLoad runs once for the matching name. The subscription is removed before
// initialization so later signals of any name never reach it again.
func (a *Addon) onLoad(name string) {
	if name != a.name {
		return
	}

	a.bus.Unsubscribe(a.token)
	a.state = Initialized
	a.ctrl.Initialize()

	logger.Addon(a.name).Info("Addon initialized", "hidden", a.ctrl.Enabled())
}

func (a *Addon) Name() string {
	return a.name
}

func (a *Addon) State() State {
	return a.state
}

func (a *Addon) Controller() *notice.Controller {
	return a.ctrl
}
