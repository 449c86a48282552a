// Package database opens the optional SQL database behind the player alias table.
//
// It wraps GORM and supports two drivers: MySQL for shared deployments and sqlite for
// a local file (or ":memory:" in tests).
//
// # Connect
//
// Connect builds the dialector from Config, tunes the connection pool and pings the
// database before returning it. Callers treat a failure as "no database".
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns report the columns of a table so commands can
// refuse to resolve nicknames against a table that was never migrated.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("database unavailable", zap.Error(err))
//	}
//
//	missing, err := database.MissingColumns(db, "player_aliases", []string{"nickname", "name"})
package database
