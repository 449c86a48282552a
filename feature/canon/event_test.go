package canon

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeldConstructors_SortHandTiles(t *testing.T) {
	hand := []Instance{11, 9}
	e := Pung(1, 10, 0, hand)

	assert.Equal(t, []Instance{9, 11}, e.Tiles)
	assert.Equal(t, []Instance{11, 9}, hand, "caller slice must not be reordered")
	assert.True(t, e.IsMeld())
	assert.False(t, e.IsKong())
}

func TestEventItem_Removed(t *testing.T) {
	tests := []struct {
		name  string
		event EventItem
		want  []Instance
	}{
		{name: "draw", event: Draw(0, 5), want: nil},
		{name: "discard", event: Discard(0, 5, false), want: []Instance{5}},
		{name: "chow", event: Chow(1, 4, 0, []Instance{8, 12}), want: []Instance{8, 12}},
		{name: "additional kong", event: AdditionalKong(2, 40), want: []Instance{40}},
		{name: "concealed kong", event: ConcealedKong(3, []Instance{3, 2, 1, 0}), want: []Instance{0, 1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.event.Removed())
		})
	}
}

func TestEventItem_JSON(t *testing.T) {
	tests := []struct {
		name  string
		event EventItem
		want  string
	}{
		{name: "draw", event: Draw(0, 5), want: `{"k":"t","p":0,"t":5}`},
		{name: "discard", event: Discard(2, 0, false), want: `{"k":"d","p":2,"t":0}`},
		{name: "riichi discard", event: Discard(1, 7, true), want: `{"k":"d","p":1,"t":7,"isRiichi":true}`},
		{name: "pung", event: Pung(1, 10, 0, []Instance{11, 9}), want: `{"k":"p","p":1,"t":10,"from":0,"tiles":[9,11]}`},
		{name: "additional kong", event: AdditionalKong(3, 40), want: `{"k":"k","p":3,"t":40,"from":3}`},
		{name: "concealed kong", event: ConcealedKong(0, []Instance{0, 1, 2, 3}), want: `{"k":"a","p":0,"from":0,"tiles":[0,1,2,3]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.event)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))

			var back EventItem
			require.NoError(t, json.Unmarshal(data, &back))
			assert.Equal(t, tt.event, back)
		})
	}
}

func TestEventItem_MarshalUnknownKind(t *testing.T) {
	_, err := json.Marshal(EventItem{Kind: "x"})
	assert.Error(t, err)
}
