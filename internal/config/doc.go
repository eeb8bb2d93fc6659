// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package config loads the optional fishfry.yaml file and exposes dotted-key
// getters over it.
package config
