// Package logger builds the zap logger shared by the CLI and the HTTP server.
//
// New reads log.level and log.format. The debug level uses zap's development config,
// and every other level uses the production config. Format picks the json or console
// encoder independently of the level.
//
// Two helpers scope a logger to the unit of work:
//
//	l := logger.WithRayID(log, c)         // adds ray_id from the rayid middleware
//	l := logger.WithMatch(log, 1001, "mjson") // adds match_id and format
//
// Batch conversion and cross-check loading log one warning per failed match through
// WithMatch, so a failing id can be found with a single field filter.
package logger
