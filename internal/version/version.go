// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package version

// Version is overridden at build time with -ldflags "-X ...version.Version=".
var Version = "0.1.0-dev"

// UserAgent identifies fishfry to the dataset host and the geocoder.
func UserAgent() string {
	return "fishfry/" + Version
}
