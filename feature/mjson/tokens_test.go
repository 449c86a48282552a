package mjson

import (
	"testing"

	"match-canon/feature/canon"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeKind(t *testing.T) {
	tests := []struct {
		code int
		kind canon.Kind
		red  bool
	}{
		{code: 11, kind: 0},
		{code: 19, kind: 8},
		{code: 21, kind: 9},
		{code: 35, kind: 22},
		{code: 41, kind: canon.KindEast},
		{code: 47, kind: canon.KindRed},
		{code: 51, kind: 4, red: true},
		{code: 52, kind: 13, red: true},
		{code: 53, kind: 22, red: true},
	}

	for _, tt := range tests {
		kind, red, ok := codeKind(tt.code)
		assert.True(t, ok, "code %d", tt.code)
		assert.Equal(t, tt.kind, kind, "code %d", tt.code)
		assert.Equal(t, tt.red, red, "code %d", tt.code)
	}

	for _, code := range []int{0, 10, 20, 48, 54, 60, -11} {
		_, _, ok := codeKind(code)
		assert.False(t, ok, "code %d", code)
	}
}

func TestInstanceCode(t *testing.T) {
	assert.Equal(t, 51, instanceCode(16))
	assert.Equal(t, 52, instanceCode(52))
	assert.Equal(t, 53, instanceCode(88))
	assert.Equal(t, 15, instanceCode(17))
	assert.Equal(t, 13, instanceCode(10))
	assert.Equal(t, 41, instanceCode(108))
	assert.Equal(t, 47, instanceCode(135))

	assert.True(t, codeMatches(15, 16), "plain five code accepts the red copy")
	assert.False(t, codeMatches(51, 17), "red code never accepts a plain copy")
}

func TestParseGain(t *testing.T) {
	tests := []struct {
		name  string
		seat  int
		token any
		want  gain
	}{
		{name: "plain draw", seat: 0, token: float64(23), want: gain{Code: 23}},
		{name: "chow from the left", seat: 1, token: "c151416", want: gain{Code: 15, Call: canon.EventChow, From: 0, Hand: []int{14, 16}}},
		{name: "pung from the right", seat: 1, token: "4141p41", want: gain{Code: 41, Call: canon.EventPung, From: 2, Hand: []int{41, 41}}},
		{name: "pung from across", seat: 3, token: "52p2525", want: gain{Code: 25, Call: canon.EventPung, From: 1, Hand: []int{52, 25}}},
		{name: "open kong from the left", seat: 2, token: "m31313131", want: gain{Code: 31, Call: canon.EventOpenKong, From: 1, Hand: []int{31, 31, 31}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseGain(tt.seat, tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseGain_Malformed(t *testing.T) {
	for _, token := range []any{"x12", "p1", "1p2222", true, nil} {
		_, err := parseGain(0, token)
		assert.ErrorIs(t, err, canon.ErrMalformedToken, "token %v", token)
	}
}

func TestParseDiscard(t *testing.T) {
	tests := []struct {
		name  string
		token any
		want  discard
	}{
		{name: "plain", token: float64(45), want: discard{Code: 45}},
		{name: "drawn tile", token: float64(60), want: discard{Code: codeTsumogiri}},
		{name: "riichi", token: "r60", want: discard{Code: 60, Riichi: true}},
		{name: "concealed kong", token: "111111a11", want: discard{Code: 11, Kong: canon.EventConcealedKong, Hand: []int{11, 11, 11, 11}}},
		{name: "concealed kong with red five", token: "1515a5115", want: discard{Code: 51, Kong: canon.EventConcealedKong, Hand: []int{15, 15, 15, 51}}},
		{name: "additional kong", token: "414141k41", want: discard{Code: 41, Kong: canon.EventAdditionalKong, Hand: []int{41}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDiscard(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDiscard_Malformed(t *testing.T) {
	for _, token := range []any{"rx", "p41", "11a1", 1.5} {
		_, err := parseDiscard(token)
		assert.ErrorIs(t, err, canon.ErrMalformedToken, "token %v", token)
	}
}
