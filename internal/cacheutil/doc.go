// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package cacheutil keeps the last fetched venue snapshot on disk and decides
// whether it is still fresh enough to use.
package cacheutil
