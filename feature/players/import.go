package players

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// importBatchSize bounds the rows of one INSERT statement.
const importBatchSize = 500

// Import upserts entries into player_aliases; an existing nickname gets the new name.
// It returns the number of entries written.
func Import(ctx context.Context, db *gorm.DB, entries []Entry) (int, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	rows := make([]PlayerAlias, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, PlayerAlias{Nickname: e.Nickname, Name: e.Name})
	}

	err := db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "nickname"}},
			DoUpdates: clause.AssignmentColumns([]string{"name"}),
		}).
		CreateInBatches(rows, importBatchSize).Error
	if err != nil {
		return 0, fmt.Errorf("import players: %w", err)
	}
	return len(rows), nil
}
