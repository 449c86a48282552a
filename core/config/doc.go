// Package config loads the match-canon configuration.
//
// Values come from the environment, optionally seeded from a .env file, with defaults
// taken from the `default` struct tags of each section. Nested keys map to upper-case
// variables joined by underscores, e.g. convert.workers is CONVERT_WORKERS.
//
// Sections:
//   - Server: HTTP port, API key, request body limit
//   - Storage: S3/MinIO endpoint, credentials and bucket
//   - Log: level and format
//   - Database: driver and connection of the player alias store
//   - Convert: workers, starting score, resolver source, storage prefixes
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Convert.Workers)
package config
