// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package differ reports how a freshly fetched snapshot differs from the one
// it replaces.
package differ
