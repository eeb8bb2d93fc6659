// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package filters narrows the venue list by amenity, ranks it by distance and
// looks venues up by name.
package filters
