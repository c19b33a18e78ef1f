package helpers

import (
	"time"

	"github.com/hako/durafmt"
)

// TimeAgo formats the duration since a unix timestamp, e.g. "2 minutes 10 seconds".
func TimeAgo(timestamp int64) string {
	return durafmt.Parse(time.Second * time.Duration(time.Now().Unix()-timestamp)).String()
}

// Duration formats a duration for chat output, limited to the two largest units.
func Duration(d time.Duration) string {
	return durafmt.Parse(d.Truncate(time.Second)).LimitFirstN(2).String()
}

// HiddenShown maps the suppression flag to the word shown to users.
func HiddenShown(hidden bool) string {
	if hidden {
		return "hidden"
	}
	return "shown"
}

// OnlineOffline maps a friend's status to the word shown to users.
func OnlineOffline(online bool) string {
	if online {
		return "online"
	}
	return "offline"
}
