package main

import (
	"hushnotice/addon"
	"hushnotice/irc"
	"hushnotice/logger"
	"hushnotice/notice"
	"hushnotice/settings"
	"hushnotice/store"
)

func main() {
	config, err := settings.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load configuration", "error", err)
	}

	logger.Init(config.Logging)
	logger.Info("Starting", "addon", config.Addon.Name, "network", config.Network.NetworkName)

	db, err := store.Open(config.Addon.Database)
	if err != nil {
		logger.Fatal("Failed to open database", "error", err)
	}
	defer db.Close()

	chatSystem := notice.NewHandlerMap()
	chatRouter := notice.NewHandlerMap()

	ctrl := notice.New(chatSystem, chatRouter, db)
	a := addon.New(config.Addon.Name, ctrl)

	bus := addon.NewBus()
	a.Bind(bus)

	// The host populates both registries before signalling the load, so the
	// controller captures real handlers, never empty slots.
	host := irc.NewHost(config, db, a, chatSystem, chatRouter)
	bus.Dispatch(config.Addon.Name)

	host.Run()
}
