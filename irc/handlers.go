package irc

import (
	"github.com/lrstanley/girc"

	"hushnotice/helpers"
	"hushnotice/logger"
	"hushnotice/notice"
)

// installDefaults registers the host's own friend-status handlers. These are
// the "originals" the controller captures at initialization: the chat-system
// handler writes the system log line, the chat-router handler formats the
// notice and delivers it to every joined channel.
func (h *Host) installDefaults() {
	h.chatSystem.SetHandler(notice.FriendStatus, h.systemNotice)
	h.chatRouter.SetHandler(notice.FriendStatus, h.routeNotice)
}

func (h *Host) systemNotice(e notice.Event) {
	logger.Friend(e.Network, e.Friend).Info("Friend status changed", "online", e.Online)
}

func (h *Host) routeNotice(e notice.Event) {
	message := girc.Fmt("{b}" + e.Friend + "{b} is now " + helpers.OnlineOffline(e.Online) + ".")

	for _, channel := range h.config.Network.Channels {
		h.client.Cmd.Message(channel, message)
	}
}
