// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package schedule resolves user supplied dates and finds the venues holding
// a fish fry on a given day.
package schedule
