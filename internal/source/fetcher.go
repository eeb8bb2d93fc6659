// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/apex/log"

	"github.com/staranto/fishfry/internal/venue"
	"github.com/staranto/fishfry/internal/version"
)

const (
	// DefaultURL is the Code for Pittsburgh fish fry map dataset.
	DefaultURL = "https://raw.githubusercontent.com/CodeForPittsburgh/fishfrymap/master/data/fishfrymap.geojson"

	// DefaultTimeout bounds the whole dataset download.
	DefaultTimeout = 30 * time.Second
)

// Source produces a freshly normalized venue list.
type Source interface {
	Fetch(ctx context.Context) ([]venue.Venue, error)
}

// Fetcher downloads the dataset over HTTP(S), or from S3 for s3:// URLs.
type Fetcher struct {
	URL       string
	Timeout   time.Duration
	UserAgent string

	// HTTPClient and S3 are optional; defaults are built on first use.
	HTTPClient *http.Client
	S3         ObjectGetter
}

// NewFetcher returns a Fetcher for url with the default timeout and user
// agent. An empty url means DefaultURL.
func NewFetcher(url string) *Fetcher {
	if url == "" {
		url = DefaultURL
	}
	return &Fetcher{
		URL:       url,
		Timeout:   DefaultTimeout,
		UserAgent: version.UserAgent(),
	}
}

// Fetch downloads and normalizes the dataset. It makes exactly one attempt.
func (f *Fetcher) Fetch(ctx context.Context) ([]venue.Venue, error) {
	timeout := f.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var (
		doc []byte
		err error
	)
	if strings.HasPrefix(f.URL, "s3://") {
		doc, err = f.fetchS3(ctx)
	} else {
		doc, err = f.fetchHTTP(ctx)
	}
	if err != nil {
		return nil, err
	}

	return Normalize(doc)
}

func (f *Fetcher) fetchHTTP(ctx context.Context) ([]byte, error) {
	log.Debugf("GET %s", f.URL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", f.UserAgent)

	client := f.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: f.Timeout}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("HTTP Error %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	var doc bytes.Buffer
	if _, err := doc.ReadFrom(resp.Body); err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return doc.Bytes(), nil
}
