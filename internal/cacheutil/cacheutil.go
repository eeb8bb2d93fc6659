// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cacheutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/apex/log"
	"github.com/jonboulle/clockwork"

	"github.com/staranto/fishfry/internal/venue"
)

const (
	// FileName is the single snapshot file kept in the cache directory.
	FileName = "fishfry_data.json"

	// DefaultMaxAge is how long a snapshot is preferred over a refetch.
	DefaultMaxAge = 7 * 24 * time.Hour
)

// Store is the on-disk venue snapshot. Dir and MaxAge are fixed at
// construction so tests can point a Store at a temp dir.
type Store struct {
	Dir    string
	MaxAge time.Duration
	Clock  clockwork.Clock
}

// New returns a Store rooted at dir. A non-positive maxAge means
// DefaultMaxAge and a nil clock means the real one.
func New(dir string, maxAge time.Duration, clock clockwork.Clock) *Store {
	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Store{Dir: dir, MaxAge: maxAge, Clock: clock}
}

// Dir resolves the base cache directory.
// Precedence:
//  1. FISHFRY_CACHE_DIR, if set and non-empty
//  2. configured, if non-empty (the cache.dir config key)
//  3. os.UserCacheDir()/fishfry
//
// Returns ("", false) if a base cannot be resolved.
func Dir(configured string) (string, bool) {
	if c, ok := os.LookupEnv("FISHFRY_CACHE_DIR"); ok && c != "" {
		return c, true
	}
	if configured != "" {
		return configured, true
	}
	if dir, err := os.UserCacheDir(); err == nil && dir != "" {
		return filepath.Join(dir, "fishfry"), true
	}
	return "", false
}

// Path is the absolute location of the snapshot file.
func (s *Store) Path() string {
	return filepath.Join(s.Dir, FileName)
}

// EnsureDir creates the cache directory. It is safe to call repeatedly.
func (s *Store) EnsureDir() error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil { //nolint:mnd
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	return nil
}

// Exists reports whether a snapshot file is present, however old.
func (s *Store) Exists() bool {
	info, err := os.Stat(s.Path())
	return err == nil && !info.IsDir()
}

// Age returns how long ago the snapshot was written. The second value is
// false when there is no snapshot.
func (s *Store) Age() (time.Duration, bool) {
	info, err := os.Stat(s.Path())
	if err != nil || info.IsDir() {
		return 0, false
	}
	return s.Clock.Since(info.ModTime()), true
}

// ModTime returns the snapshot's modification time, zero when absent.
func (s *Store) ModTime() time.Time {
	info, err := os.Stat(s.Path())
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}

// Fresh is true when a snapshot exists and is younger than MaxAge.
func (s *Store) Fresh() bool {
	age, ok := s.Age()
	return ok && age < s.MaxAge
}

// Load reads the snapshot. Missing files, I/O errors and corrupt JSON are all
// returned so the caller can decide to refetch.
func (s *Store) Load() ([]venue.Venue, error) {
	b, err := os.ReadFile(s.Path())
	if err != nil {
		return nil, fmt.Errorf("failed to read cache: %w", err)
	}

	var venues []venue.Venue
	if err := json.Unmarshal(b, &venues); err != nil {
		return nil, fmt.Errorf("failed to decode cache %s: %w", s.Path(), err)
	}

	log.Debugf("cache hit: %s (%d venues)", s.Path(), len(venues))
	return venues, nil
}

// Save replaces the snapshot with venues.
func (s *Store) Save(venues []venue.Venue) error {
	if venues == nil {
		venues = []venue.Venue{}
	}

	if err := s.EnsureDir(); err != nil {
		return err
	}

	data, err := json.Marshal(venues)
	if err != nil {
		return fmt.Errorf("failed to encode cache: %w", err)
	}

	if err := os.WriteFile(s.Path(), data, os.FileMode(0o600)); err != nil { //nolint:mnd
		return fmt.Errorf("failed to write to cache: %w", err)
	}

	log.Debugf("cache write: %s (%d venues)", s.Path(), len(venues))
	return nil
}

// Purge removes the snapshot. A missing snapshot is not an error.
func (s *Store) Purge() error {
	if err := os.Remove(s.Path()); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.WithError(err).Warnf("failed to remove cache file %s", s.Path())
		return fmt.Errorf("failed to purge cache: %w", err)
	}
	return nil
}
