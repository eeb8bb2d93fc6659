// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package source fetches the fish fry GeoJSON dataset, normalizes it into
// venue records and applies the cache policy: fresh cache first, then the
// network, then whatever stale snapshot is left.
package source
