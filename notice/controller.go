package notice

import (
	"time"

	"hushnotice/logger"
)

// Controller owns the suppression flag and keeps two handler registries in
// lockstep with it: while enabled, both registries hold Noop for the
// FriendStatus key; while disabled, both hold the handlers captured at
// initialization.
type Controller struct {
	chatSystem Registry
	chatRouter Registry
	store      StateStore

	enabled     bool
	initialized bool
	changedAt   time.Time

	// Captured once at Initialize, read-only afterwards.
	chatSystemOriginal Handler
	chatRouterOriginal Handler
}

// New builds a controller over the two host registries. The persisted flag
// is honored when present; otherwise notices start hidden. store may be nil,
// in which case the flag only lives for the process.
func New(chatSystem, chatRouter Registry, store StateStore) *Controller {
	c := &Controller{
		chatSystem: chatSystem,
		chatRouter: chatRouter,
		store:      store,
		enabled:    true,
		changedAt:  time.Now(),
	}

	if store != nil {
		if enabled, ok := store.Load(); ok {
			c.enabled = enabled
		}
	}

	return c
}

// Initialize captures the handlers currently registered for the FriendStatus
// key and applies the suppression flag. The host must have populated both
// registries before this runs. A repeated call is a logged no-op so the
// captured originals are never clobbered with the suppressing handler.
func (c *Controller) Initialize() {
	if c.initialized {
		logger.Warn("Controller already initialized, ignoring")
		return
	}

	c.chatSystemOriginal = c.chatSystem.Handler(FriendStatus)
	c.chatRouterOriginal = c.chatRouter.Handler(FriendStatus)
	c.initialized = true

	c.Apply()
}

// Apply writes the handler selected by the suppression flag into both
// registries. Idempotent; the registries never end up in different modes.
func (c *Controller) Apply() {
	if c.enabled {
		c.chatSystem.SetHandler(FriendStatus, Noop)
		c.chatRouter.SetHandler(FriendStatus, Noop)
		return
	}

	c.chatSystem.SetHandler(FriendStatus, c.chatSystemOriginal)
	c.chatRouter.SetHandler(FriendStatus, c.chatRouterOriginal)
}

// Toggle flips the suppression flag, applies it and persists it. It returns
// the new state so the command surface can report it.
func (c *Controller) Toggle() bool {
	c.enabled = !c.enabled
	c.changedAt = time.Now()
	c.Apply()

	if c.store != nil {
		if err := c.store.Save(c.enabled); err != nil {
			logger.Error("Failed to persist suppression flag", "error", err)
		}
	}

	logger.Debug("Toggled friend notices", "hidden", c.enabled)
	return c.enabled
}

// Enabled reports whether notices are currently hidden.
func (c *Controller) Enabled() bool {
	return c.enabled
}

// Initialized reports whether the original handlers have been captured.
func (c *Controller) Initialized() bool {
	return c.initialized
}

// Since returns how long the flag has been in its current state.
func (c *Controller) Since() time.Duration {
	return time.Since(c.changedAt)
}
