package players

import (
	"fmt"

	"match-canon/feature/canon"

	"gorm.io/gorm"
)

const (
	SourceFile     = "file"
	SourceDatabase = "database"
)

// NewResolver builds the resolver for the configured source. The file source reads
// path; the database source needs db and verifies the alias table first.
func NewResolver(source, path string, db *gorm.DB, cacheSize int) (canon.Resolver, error) {
	switch source {
	case SourceFile, "":
		entries, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		return NewFileResolver(entries), nil
	case SourceDatabase:
		if db == nil {
			return nil, fmt.Errorf("players source %q needs a database connection", source)
		}
		if err := VerifySchema(db); err != nil {
			return nil, err
		}
		return NewDBResolver(db, cacheSize)
	default:
		return nil, fmt.Errorf("unknown players source %q", source)
	}
}
