// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package output renders venues for the terminal, either as the human
// readable cards or as table, JSON or YAML documents.
package output
