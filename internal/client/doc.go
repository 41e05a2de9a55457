// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artur Akhmedov

// Package client implements the interactive workout-logger runtime.
//
// It wires the terminal UI, the sync core, local storage, and the background
// flush job into a single process lifecycle, and hosts the controller the UI
// drives.
package client
