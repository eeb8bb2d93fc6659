// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/apex/log"
	"github.com/jonboulle/clockwork"

	"github.com/staranto/fishfry/internal/cacheutil"
	"github.com/staranto/fishfry/internal/config"
	"github.com/staranto/fishfry/internal/geocode"
	"github.com/staranto/fishfry/internal/source"
)

// Meta are the meta-options that are available on all or most commands.
type Meta struct {
	Args    []string
	Config  config.Type
	Context context.Context
	Clock   clockwork.Clock

	Stdout io.Writer
	Stderr io.Writer

	CacheDir       string
	MaxAge         time.Duration
	SourceURL      string
	FetchTimeout   time.Duration
	GeocodeURL     string
	GeocodeTimeout time.Duration

	// Source replaces the dataset fetcher, mostly for tests.
	Source source.Source
}

// New resolves a Meta from the loaded config. Everything has a default, so a
// missing config file yields the stock behaviour.
func New(ctx context.Context, args []string, cfg config.Type) Meta {
	configured, _ := config.GetString("cache.dir", "")
	dir, ok := cacheutil.Dir(configured)
	if !ok {
		log.Warn("unable to resolve a cache directory, using the working directory")
		dir, _ = os.Getwd()
	}

	maxAge, err := config.GetDuration("cache.max_age", cacheutil.DefaultMaxAge)
	if err != nil {
		log.WithError(err).Warn("ignoring cache.max_age")
		maxAge = cacheutil.DefaultMaxAge
	}
	sourceURL, _ := config.GetString("source.url", source.DefaultURL)
	fetchTimeout, err := config.GetDuration("source.timeout", source.DefaultTimeout)
	if err != nil {
		log.WithError(err).Warn("ignoring source.timeout")
		fetchTimeout = source.DefaultTimeout
	}
	geocodeURL, _ := config.GetString("geocode.url", geocode.DefaultURL)
	geocodeTimeout, err := config.GetDuration("geocode.timeout", geocode.DefaultTimeout)
	if err != nil {
		log.WithError(err).Warn("ignoring geocode.timeout")
		geocodeTimeout = geocode.DefaultTimeout
	}

	return Meta{
		Args:           args,
		Config:         cfg,
		Context:        ctx,
		Clock:          clockwork.NewRealClock(),
		Stdout:         os.Stdout,
		Stderr:         os.Stderr,
		CacheDir:       dir,
		MaxAge:         maxAge,
		SourceURL:      sourceURL,
		FetchTimeout:   fetchTimeout,
		GeocodeURL:     geocodeURL,
		GeocodeTimeout: geocodeTimeout,
	}
}

// Store returns the cache store described by m.
func (m Meta) Store() *cacheutil.Store {
	return cacheutil.New(m.CacheDir, m.MaxAge, m.Clock)
}

// Loader returns a loader over m's store and dataset source, reporting
// progress on m.Stderr.
func (m Meta) Loader() *source.Loader {
	src := m.Source
	if src == nil {
		f := source.NewFetcher(m.SourceURL)
		f.Timeout = m.FetchTimeout
		src = f
	}

	store := m.Store()
	if err := store.EnsureDir(); err != nil {
		log.WithError(err).Warn("failed to create cache directory")
	}

	return &source.Loader{
		Store:    store,
		Source:   src,
		Progress: m.Stderr,
	}
}

// Geocoder returns a geocoding client for m's endpoint.
func (m Meta) Geocoder() *geocode.Client {
	return geocode.NewClient(m.GeocodeURL, m.GeocodeTimeout)
}
