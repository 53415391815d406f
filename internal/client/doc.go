// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It chooses where the history lives (local SQLite or the remote server),
// wires the client services and runs the terminal UI until exit.
package client
