package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a coaching API base address
//	-d local database path (SQLite file)
//	-owner-id account identifier for workout logging
//	-api-token opaque bearer token for the coaching API
//	-request-timeout outbound request timeout (e.g., "15s", "1m")
//	-sync-interval background sync interval (e.g., "5m")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var apiAddress string
	var databaseDSN string
	var ownerID int64
	var apiToken string
	var requestTimeout time.Duration
	var syncInterval time.Duration
	var jsonConfigPath string

	flag.StringVar(&apiAddress, "a", "", "Coaching API base address")
	flag.StringVar(&databaseDSN, "d", "", "Local database path")
	flag.Int64Var(&ownerID, "owner-id", 0, "Account identifier")
	flag.StringVar(&apiToken, "api-token", "", "Coaching API bearer token")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Background sync interval (e.g., 5m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			OwnerID:  ownerID,
			APIToken: apiToken,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Adapter: Adapter{
			HTTPAddress:    apiAddress,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			SyncInterval: syncInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
