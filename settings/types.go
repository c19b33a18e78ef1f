package settings

import (
	"hushnotice/logger"
)

type (
	Config struct {
		Addon   Addon         `toml:"addon" validate:"required"`
		Network Network       `toml:"network" validate:"required"`
		Logging logger.Config `toml:"logging" validate:"required"`
	}

	// Addon identifies the addon towards the host and holds its runtime knobs.
	Addon struct {
		Name          string `toml:"name" validate:"required"`
		ActionTrigger string `toml:"actionTrigger" validate:"required"`
		Database      string `toml:"database" validate:"required"`
	}

	Network struct {
		NetworkName string   `toml:"networkName" validate:"required"`
		Nick        string   `toml:"nick" validate:"required"`
		User        string   `toml:"user"`
		Name        string   `toml:"name"`
		Channels    []string `toml:"channels" validate:"required,min=1"`
		Friends     []string `toml:"friends"`
		Server      Server   `toml:"server" validate:"required"`
	}

	Server struct {
		Host          string `toml:"host" validate:"required"`
		Port          int    `toml:"port" validate:"required"`
		SSL           bool   `toml:"ssl"`
		SkipSslVerify bool   `toml:"skipSslVerify"`
	}
)

// Ident returns the user field to register with, falling back to the nick.
func (n *Network) Ident() string {
	if n.User != "" {
		return n.User
	}
	return n.Nick
}

// RealName returns the gecos field, falling back to the nick.
func (n *Network) RealName() string {
	if n.Name != "" {
		return n.Name
	}
	return n.Nick
}
