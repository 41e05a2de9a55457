// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artur Akhmedov

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Cross-source precedence is resolved by the builder; validation here only
// rejects combinations no source precedence can fix.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	// The pending-write queue must survive restarts, so an in-memory DSN is
	// not acceptable for the client.
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SyncInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.OwnerID <= 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}
