// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package geocode resolves free-text Pittsburgh-area locations to coordinates
// with the OpenStreetMap Nominatim search API.
package geocode
