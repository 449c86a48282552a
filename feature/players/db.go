package players

import (
	"context"
	"errors"
	"fmt"

	"match-canon/core/database"
	"match-canon/feature/canon"

	lru "github.com/hashicorp/golang-lru/v2"
	"gorm.io/gorm"
)

// DefaultCacheSize is used when no positive cache size is configured.
const DefaultCacheSize = 1024

// DBResolver resolves nicknames from the player_aliases table.
// Found names are cached; unknown nicknames are looked up again every time.
type DBResolver struct {
	db    *gorm.DB
	cache *lru.Cache[string, string]
}

// NewDBResolver creates a resolver over db with an LRU cache of cacheSize entries.
func NewDBResolver(db *gorm.DB, cacheSize int) (*DBResolver, error) {
	if db == nil {
		return nil, errors.New("players: database resolver needs a database connection")
	}
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New[string, string](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("players: %w", err)
	}
	return &DBResolver{db: db, cache: cache}, nil
}

// Resolve implements canon.Resolver.
func (r *DBResolver) Resolve(nickname string) (string, error) {
	if name, ok := r.cache.Get(nickname); ok {
		return name, nil
	}

	var alias PlayerAlias
	err := r.db.Where("nickname = ?", nickname).Take(&alias).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("%q: %w", nickname, canon.ErrUnknownPlayer)
	}
	if err != nil {
		return "", fmt.Errorf("lookup %q: %w", nickname, err)
	}

	r.cache.Add(nickname, alias.Name)
	return alias.Name, nil
}

// Purge drops every cached name, e.g. after an import.
func (r *DBResolver) Purge() {
	r.cache.Purge()
}

// Migrate creates or updates the player_aliases table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&PlayerAlias{}); err != nil {
		return fmt.Errorf("migrate player_aliases: %w", err)
	}
	return nil
}

// MissingColumns lists the columns the resolver reads that player_aliases lacks.
func MissingColumns(db *gorm.DB) ([]string, error) {
	return database.MissingColumns(db, PlayerAlias{}.TableName(), aliasColumns)
}

// Count returns the number of stored aliases.
func Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var n int64
	if err := db.WithContext(ctx).Model(&PlayerAlias{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count player_aliases: %w", err)
	}
	return n, nil
}

// VerifySchema fails when the player_aliases table lacks a column the resolver reads.
func VerifySchema(db *gorm.DB) error {
	missing, err := MissingColumns(db)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return fmt.Errorf("player_aliases is missing columns %v; run `players import`", missing)
	}
	return nil
}
