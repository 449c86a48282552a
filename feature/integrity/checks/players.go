package checks

import (
	"context"
	"fmt"

	"match-canon/feature/convert"
	"match-canon/feature/players"

	"gorm.io/gorm"
)

// PlayersReport describes the nickname store the decoders resolve against.
type PlayersReport struct {
	Source         string   `json:"source"`
	Matched        bool     `json:"matched"`
	Entries        int64    `json:"entries"`
	MissingColumns []string `json:"missing_columns"`
	Errors         []string `json:"errors"`
}

// CheckPlayers verifies the configured players source: the file parses, or the
// player_aliases table has the columns the resolver reads. db may be nil for the
// file source.
func CheckPlayers(ctx context.Context, db *gorm.DB, cfg convert.Config) (*PlayersReport, error) {
	report := &PlayersReport{
		Source:         cfg.PlayersSource,
		Matched:        true,
		MissingColumns: []string{},
		Errors:         []string{},
	}

	switch cfg.PlayersSource {
	case players.SourceFile, "":
		report.Source = players.SourceFile
		entries, err := players.LoadFile(cfg.PlayersFile)
		if err != nil {
			report.Matched = false
			report.Errors = append(report.Errors, err.Error())
			return report, nil
		}
		report.Entries = int64(len(entries))

	case players.SourceDatabase:
		if db == nil {
			return nil, fmt.Errorf("database connection is nil")
		}
		missing, err := players.MissingColumns(db)
		if err != nil {
			report.Matched = false
			report.Errors = append(report.Errors, fmt.Sprintf("Failed to inspect player_aliases: %v", err))
			return report, nil
		}
		if len(missing) > 0 {
			report.Matched = false
			report.MissingColumns = missing
			return report, nil
		}
		if report.Entries, err = players.Count(ctx, db); err != nil {
			report.Matched = false
			report.Errors = append(report.Errors, err.Error())
		}

	default:
		return nil, fmt.Errorf("unknown players source %q", cfg.PlayersSource)
	}

	if report.Entries == 0 {
		report.Matched = false
		report.Errors = append(report.Errors, "no player aliases")
	}
	return report, nil
}
