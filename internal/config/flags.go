package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a backend base URL (e.g. "https://api.propchat.example")
//	-d local database path
//	-c/-config json file path with configs
//	-request-timeout outbound request timeout (e.g., "15s", "1m")
//	-refresh-interval token refresh worker interval (e.g., "5m")
func ParseFlags() *StructuredConfig {
	var baseURL string
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var refreshInterval time.Duration

	flag.StringVar(&baseURL, "a", "", "Backend base URL")
	flag.StringVar(&databaseDSN, "d", "", "Local database path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	flag.DurationVar(&refreshInterval, "refresh-interval", 0, "Token refresh interval (e.g., 5m)")

	flag.Parse()

	return &StructuredConfig{
		Adapter: Adapter{
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Workers: Workers{
			RefreshInterval: refreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
