package canon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstance_KindAndCopy(t *testing.T) {
	tests := []struct {
		name     string
		instance Instance
		kind     Kind
		copy     int
		red      bool
	}{
		{name: "first man", instance: 0, kind: KindMan1, copy: 0},
		{name: "kind 2 copy 2", instance: 10, kind: 2, copy: 2},
		{name: "red five man", instance: 16, kind: 4, copy: 0, red: true},
		{name: "normal five man", instance: 17, kind: 4, copy: 1},
		{name: "red five pin", instance: 52, kind: 13, copy: 0, red: true},
		{name: "red five sou", instance: 88, kind: 22, copy: 0, red: true},
		{name: "last red dragon", instance: 135, kind: KindRed, copy: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.instance.Kind())
			assert.Equal(t, tt.copy, tt.instance.Copy())
			assert.Equal(t, tt.red, tt.instance.IsRed())
			assert.Equal(t, tt.instance, NewInstance(tt.kind, tt.copy))
		})
	}
}

func TestKind_Classification(t *testing.T) {
	assert.True(t, KindEast.IsHonor())
	assert.False(t, Kind(26).IsHonor())
	assert.True(t, Kind(4).IsFive())
	assert.False(t, Kind(31).IsFive(), "white dragon is not a five")
	assert.Equal(t, 2, KindSou1.Suit())
	assert.Equal(t, 9, Kind(17).Number())
	assert.False(t, Kind(34).Valid())
	assert.False(t, Instance(136).Valid())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "1m", KindMan1.String())
	assert.Equal(t, "5p", Kind(13).String())
	assert.Equal(t, "9s", Kind(26).String())
	assert.Equal(t, "E", KindEast.String())
	assert.Equal(t, "Rd", KindRed.String())
	assert.Equal(t, "3m#2", Instance(10).String())
}
