package store

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"git.mills.io/prologic/bitcask"
)

const (
	enabledKey      = "hushnotice_enabled"
	friendKeyPrefix = "hushnotice_friend_"
)

// Store persists the suppression flag and friend last-seen data.
type Store struct {
	db *bitcask.Bitcask
}

// Open opens (or creates) the database at the given path.
func Open(path string) (*Store, error) {
	db, err := bitcask.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Close flushes and closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Merge reclaims disk space from overwritten keys.
func (s *Store) Merge() error {
	return s.db.Merge()
}

// Load reads the persisted suppression flag. ok is false when nothing
// has been persisted yet.
func (s *Store) Load() (enabled, ok bool) {
	value, err := s.GetString(enabledKey)
	if err != nil {
		return false, false
	}
	enabled, err = strconv.ParseBool(value)
	if err != nil {
		return false, false
	}
	return enabled, true
}

// Save persists the suppression flag.
func (s *Store) Save(enabled bool) error {
	return s.PutString(enabledKey, strconv.FormatBool(enabled))
}

// TouchFriend records the current time and status for a friend.
func (s *Store) TouchFriend(nick string, online bool) error {
	value := strconv.FormatInt(time.Now().Unix(), 10) + " " + strconv.FormatBool(online)
	return s.PutString(friendKeyPrefix+nick, value)
}

// FriendSeen returns when a friend's status last changed and whether they
// were online at that point. ok is false when the friend has never been seen.
func (s *Store) FriendSeen(nick string) (seen time.Time, online, ok bool) {
	value, err := s.GetString(friendKeyPrefix + nick)
	if err != nil {
		return time.Time{}, false, false
	}

	fields := strings.Fields(value)
	if len(fields) != 2 {
		return time.Time{}, false, false
	}

	ts, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return time.Time{}, false, false
	}
	online, err = strconv.ParseBool(fields[1])
	if err != nil {
		return time.Time{}, false, false
	}

	return time.Unix(ts, 0), online, true
}

func (s *Store) PutString(key string, value string) error {
	return s.db.Put(CacheKey(key), []byte(value))
}

func (s *Store) GetString(key string) (string, error) {
	value, err := s.db.Get(CacheKey(key))
	if err != nil {
		return "", err
	}
	return string(value), nil
}

func (s *Store) Has(key string) bool {
	return s.db.Has(CacheKey(key))
}

func (s *Store) Delete(key string) error {
	return s.db.Delete(CacheKey(key))
}
