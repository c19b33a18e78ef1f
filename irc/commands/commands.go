package commands

import (
	"strings"

	"github.com/lrstanley/girc"

	"hushnotice/addon"
	"hushnotice/helpers"
	"hushnotice/settings"
	"hushnotice/store"
)

// Command names understood by the addon.
const (
	ActionToggle = "hideloginnotice"
	ActionStatus = "status"
	ActionHelp   = "help"
)

// Parse extracts the command action from a channel message, or "" when the
// message does not start with the action trigger.
func Parse(message, trigger string) string {
	if !strings.HasPrefix(message, trigger) {
		return ""
	}

	action := strings.TrimPrefix(message, trigger)
	parts := strings.SplitN(action, " ", 2)

	return strings.ToLower(strings.TrimSpace(parts[0]))
}

// Dispatch routes a PRIVMSG to the addon's command handlers.
func Dispatch(c *girc.Client, e girc.Event, a *addon.Addon, db *store.Store, config *settings.Config) {
	action := Parse(e.Last(), config.Addon.ActionTrigger)
	if action == "" {
		return
	}

	switch action {
	case ActionToggle:
		if a.State() != addon.Initialized {
			c.Cmd.Reply(e, girc.Fmt("{b}"+a.Name()+"{b} has not finished loading yet."))
			return
		}

		hidden := a.Controller().Toggle()
		c.Cmd.Reply(e, girc.Fmt("Friend login/logout notices are now {b}"+helpers.HiddenShown(hidden)+"{b}."))

	case ActionStatus:
		c.Cmd.Reply(e, girc.Fmt(statusLine(a)))

		for _, friend := range config.Network.Friends {
			c.Cmd.Reply(e, girc.Fmt(friendLine(db, friend)))
		}

	case ActionHelp:
		c.Cmd.Reply(e, girc.Fmt("Commands: {b}"+config.Addon.ActionTrigger+ActionToggle+
			"{b} toggles friend notices, {b}"+config.Addon.ActionTrigger+ActionStatus+
			"{b} shows the current state."))
	}
}

func statusLine(a *addon.Addon) string {
	ctrl := a.Controller()

	if a.State() != addon.Initialized {
		return "{b}" + a.Name() + "{b}: " + a.State().String()
	}

	return "{b}" + a.Name() + "{b}: notices {b}" + helpers.HiddenShown(ctrl.Enabled()) +
		"{b} for " + helpers.Duration(ctrl.Since())
}

func friendLine(db *store.Store, friend string) string {
	seen, online, ok := db.FriendSeen(friend)
	if !ok {
		return "{b}" + friend + "{b}: never seen"
	}

	return "{b}" + friend + "{b}: " + helpers.OnlineOffline(online) + " since " +
		helpers.TimeAgo(seen.Unix()) + " ago"
}
