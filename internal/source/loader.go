// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"context"
	"fmt"
	"io"

	"github.com/apex/log"

	"github.com/staranto/fishfry/internal/cacheutil"
	"github.com/staranto/fishfry/internal/venue"
)

// Origin says where a Result's venues came from.
type Origin int

const (
	// OriginNone means nothing could be loaded.
	OriginNone Origin = iota
	// OriginCache is a snapshot younger than the store's max age.
	OriginCache
	// OriginRemote is a fresh download, already written to the cache.
	OriginRemote
	// OriginStale is an old snapshot used because the download failed.
	OriginStale
)

func (o Origin) String() string {
	switch o {
	case OriginCache:
		return "cache"
	case OriginRemote:
		return "remote"
	case OriginStale:
		return "stale"
	default:
		return "none"
	}
}

// Result is the outcome of a Load. Err holds the fetch failure, if any, even
// when stale venues were recovered.
type Result struct {
	Venues []venue.Venue
	Origin Origin
	Err    error
}

// Loader applies the cache policy over a Store and a Source.
type Loader struct {
	Store  *cacheutil.Store
	Source Source

	// Progress receives the human-readable status lines. Nil is silent.
	Progress io.Writer
}

// Load returns the venue list. Unless force is set, a fresh snapshot is used
// as is. Otherwise the source is fetched once; on success the snapshot is
// replaced, on failure any existing snapshot is returned regardless of age.
// Load never fails outright; an empty Result with Err set is the worst case.
func (l *Loader) Load(ctx context.Context, force bool) Result {
	if !force && l.Store.Fresh() {
		venues, err := l.Store.Load()
		if err == nil {
			return Result{Venues: venues, Origin: OriginCache}
		}
		log.WithError(err).Warn("fresh cache unreadable, refetching")
	}

	l.printf("Fetching fresh fish fry data...\n")
	venues, err := l.Source.Fetch(ctx)
	if err == nil {
		if saveErr := l.Store.Save(venues); saveErr != nil {
			log.WithError(saveErr).Warn("failed to write venues to cache")
		}
		l.printf("Loaded %d fish fry venues.\n", len(venues))
		return Result{Venues: venues, Origin: OriginRemote}
	}

	l.printf("Error fetching data: %v\n", err)
	if l.Store.Exists() {
		stale, loadErr := l.Store.Load()
		if loadErr == nil {
			l.printf("Using cached data.\n")
			return Result{Venues: stale, Origin: OriginStale, Err: err}
		}
		log.WithError(loadErr).Warn("stale cache unreadable")
	}

	return Result{Origin: OriginNone, Err: err}
}

func (l *Loader) printf(format string, args ...any) {
	if l.Progress == nil {
		return
	}
	fmt.Fprintf(l.Progress, format, args...)
}
