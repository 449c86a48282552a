package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("mjlog")
	assert.NoError(t, err)
	assert.Equal(t, FormatMjlog, f)
	assert.Equal(t, ".xml", f.Extension())

	f, err = ParseFormat("mjson")
	assert.NoError(t, err)
	assert.Equal(t, ".json", f.Extension())
	assert.Equal(t, "application/json", f.ContentType())

	_, err = ParseFormat("tenhou6")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestParseObjectID(t *testing.T) {
	tests := []struct {
		name   string
		ext    string
		wantID int64
		wantOK bool
	}{
		{"2024.xml", ".xml", 2024, true},
		{"7.json", ".json", 7, true},
		{"7.json", ".xml", 0, false},
		{"draft.xml", ".xml", 0, false},
		{"12a.xml", ".xml", 0, false},
		{"99999999999999999999.xml", ".xml", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name+tt.ext, func(t *testing.T) {
			id, ok := ParseObjectID(tt.name, tt.ext)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}
