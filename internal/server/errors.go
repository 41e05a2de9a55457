// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artur Akhmedov

package server

import "errors"

var (
	errNoAddressGiven = errors.New("no listen address given")
)
