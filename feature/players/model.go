package players

// PlayerAlias maps one nickname to a player.
type PlayerAlias struct {
	ID       uint   `gorm:"primaryKey"`
	Nickname string `gorm:"column:nickname;size:191;uniqueIndex;not null"`
	Name     string `gorm:"column:name;size:191;not null"`
}

// TableName overrides the table name used by PlayerAlias.
func (PlayerAlias) TableName() string {
	return "player_aliases"
}

// aliasColumns are the columns the resolver reads.
var aliasColumns = []string{"id", "nickname", "name"}
