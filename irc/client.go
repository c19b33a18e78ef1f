package irc

import (
	"crypto/tls"
	"time"

	"github.com/lrstanley/girc"

	"hushnotice/addon"
	"hushnotice/irc/commands"
	"hushnotice/logger"
	"hushnotice/notice"
	"hushnotice/settings"
	"hushnotice/store"
)

// WATCH numerics carrying friend status changes.
const (
	rplLogon  = "600"
	rplLogoff = "601"
)

// Host is the chat client the addon lives in. It owns the girc connection,
// the two handler registries and the friend watch list.
type Host struct {
	client *girc.Client
	config *settings.Config
	db     *store.Store
	addon  *addon.Addon

	chatSystem *notice.HandlerMap
	chatRouter *notice.HandlerMap
}

// NewHost builds the client and populates both registries with the default
// friend-status handlers. The registries must be populated before the load
// signal for the addon is dispatched.
func NewHost(config *settings.Config, db *store.Store, a *addon.Addon, chatSystem, chatRouter *notice.HandlerMap) *Host {
	h := &Host{
		config:     config,
		db:         db,
		addon:      a,
		chatSystem: chatSystem,
		chatRouter: chatRouter,
	}

	network := config.Network
	h.client = girc.New(girc.Config{
		Server: network.Server.Host,
		Port:   network.Server.Port,
		Nick:   network.Nick,
		User:   network.Ident(),
		Name:   network.RealName(),
		SSL:    network.Server.SSL,
		TLSConfig: &tls.Config{
			InsecureSkipVerify: network.Server.SkipSslVerify,
		},
	})

	h.installDefaults()

	h.client.Handlers.Add(girc.CONNECTED, h.onConnected)
	h.client.Handlers.Add(girc.PRIVMSG, h.onPrivmsg)
	h.client.Handlers.Add(rplLogon, h.onWatch(true))
	h.client.Handlers.Add(rplLogoff, h.onWatch(false))

	return h
}

func (h *Host) onConnected(c *girc.Client, e girc.Event) {
	log := logger.Network(h.config.Network.NetworkName)
	log.Info("Connected", "server", h.config.Network.Server.Host)

	for _, channel := range h.config.Network.Channels {
		c.Cmd.Join(channel)
	}

	for _, friend := range h.config.Network.Friends {
		if err := c.Cmd.SendRaw("WATCH +" + friend); err != nil {
			log.Error("Failed to watch friend", "friend", friend, "error", err)
		}
	}
}

// onWatch translates a WATCH numeric into a friend-status event and fans it
// out to both registries. Last-seen tracking happens here so it keeps
// working while notices are hidden.
func (h *Host) onWatch(online bool) func(c *girc.Client, e girc.Event) {
	return func(c *girc.Client, e girc.Event) {
		if len(e.Params) < 2 {
			return
		}

		ev := notice.Event{
			Network: h.config.Network.NetworkName,
			Friend:  e.Params[1],
			Online:  online,
			At:      time.Now(),
		}

		if err := h.db.TouchFriend(ev.Friend, ev.Online); err != nil {
			logger.Friend(ev.Network, ev.Friend).Error("Failed to record friend status", "error", err)
		}

		h.chatSystem.Dispatch(notice.FriendStatus, ev)
		h.chatRouter.Dispatch(notice.FriendStatus, ev)
	}
}

func (h *Host) onPrivmsg(c *girc.Client, e girc.Event) {
	commands.Dispatch(c, e, h.addon, h.db, h.config)
}

// Run connects and keeps reconnecting until the connection closes cleanly.
func (h *Host) Run() {
	log := logger.Network(h.config.Network.NetworkName)

	for {
		if err := h.client.Connect(); err != nil {
			log.Error("Connection lost, reconnecting", "error", err)
			time.Sleep(30 * time.Second)
			continue
		}

		log.Info("Connection closed")
		return
	}
}
