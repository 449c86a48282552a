package players

import (
	"errors"
	"testing"

	"match-canon/feature/canon"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

const lookupQuery = "SELECT \\* FROM `player_aliases` WHERE nickname = \\?"

func TestDBResolver_ResolveCachesHits(t *testing.T) {
	db, mock := setupMockDB(t)
	r, err := NewDBResolver(db, 8)
	require.NoError(t, err)

	mock.ExpectQuery(lookupQuery).
		WillReturnRows(sqlmock.NewRows([]string{"id", "nickname", "name"}).AddRow(1, "Alice", "alice"))

	for i := 0; i < 3; i++ {
		name, err := r.Resolve("Alice")
		require.NoError(t, err)
		assert.Equal(t, "alice", name)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBResolver_PurgeForcesLookup(t *testing.T) {
	db, mock := setupMockDB(t)
	r, err := NewDBResolver(db, 8)
	require.NoError(t, err)

	mock.ExpectQuery(lookupQuery).
		WillReturnRows(sqlmock.NewRows([]string{"id", "nickname", "name"}).AddRow(1, "Alice", "alice"))
	mock.ExpectQuery(lookupQuery).
		WillReturnRows(sqlmock.NewRows([]string{"id", "nickname", "name"}).AddRow(1, "Alice", "alice2"))

	_, err = r.Resolve("Alice")
	require.NoError(t, err)
	r.Purge()
	name, err := r.Resolve("Alice")
	require.NoError(t, err)
	assert.Equal(t, "alice2", name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBResolver_Unknown(t *testing.T) {
	db, mock := setupMockDB(t)
	r, err := NewDBResolver(db, 0)
	require.NoError(t, err)

	mock.ExpectQuery(lookupQuery).WillReturnRows(sqlmock.NewRows([]string{"id", "nickname", "name"}))

	_, err = r.Resolve("Mallory")
	assert.ErrorIs(t, err, canon.ErrUnknownPlayer)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBResolver_QueryError(t *testing.T) {
	db, mock := setupMockDB(t)
	r, err := NewDBResolver(db, 0)
	require.NoError(t, err)

	mock.ExpectQuery(lookupQuery).WillReturnError(errors.New("connection reset"))

	_, err = r.Resolve("Alice")
	require.Error(t, err)
	assert.NotErrorIs(t, err, canon.ErrUnknownPlayer)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestNewDBResolver_NilDB(t *testing.T) {
	_, err := NewDBResolver(nil, 10)
	assert.Error(t, err)
}
