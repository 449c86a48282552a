package cmd

import (
	"fmt"

	"match-canon/core/config"
	"match-canon/core/database"
	"match-canon/core/logger"
	"match-canon/feature/canon"
	"match-canon/feature/players"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// loadRuntime loads the configuration and builds the application logger.
func loadRuntime() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return cfg, logg, nil
}

// connectPlayersDB opens the alias database when convert.players_source selects it.
// The file source needs no database and gets nil.
func connectPlayersDB(cfg *config.Config) (*gorm.DB, error) {
	if cfg.Convert.PlayersSource != players.SourceDatabase {
		return nil, nil
	}
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("players database: %w", err)
	}
	return db, nil
}

// openResolver builds the nickname resolver selected by convert.players_source.
func openResolver(cfg *config.Config, db *gorm.DB, logg *zap.Logger) (canon.Resolver, error) {
	conv := cfg.Convert
	if conv.PlayersSource == players.SourceDatabase {
		logg.Debug("Using players database", zap.String("driver", cfg.Database.Driver))
	} else {
		logg.Debug("Using players file", zap.String("path", conv.PlayersFile))
	}
	return players.NewResolver(conv.PlayersSource, conv.PlayersFile, db, conv.ResolverCacheSize)
}
