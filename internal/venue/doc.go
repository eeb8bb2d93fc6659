// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package venue defines the fish fry venue record shared by the cache, the
// fetcher and every command.
package venue
