// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package geo computes great-circle distances between venues and the point a
// search is centered on.
package geo
