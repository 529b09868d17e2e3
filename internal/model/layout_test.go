package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLayout(t *testing.T) {
	b, err := ParseLayout(map[string]string{"f34": "rp", "f23": "WK", "F70": "wP"})
	require.NoError(t, err)

	king := b.At(pos(2, 3))
	require.NotNil(t, king)
	assert.Equal(t, White, king.Owner)
	assert.Equal(t, King, king.Rank)
	assert.Equal(t, PieceID(1), king.ID)

	red := b.At(pos(3, 4))
	require.NotNil(t, red)
	assert.Equal(t, Red, red.Owner)
	assert.Equal(t, Man, red.Rank)
	assert.Equal(t, PieceID(2), red.ID)

	assert.Equal(t, 2, b.Count(White))
	assert.Equal(t, 1, b.Count(Red))
	assert.Equal(t, map[string]string{"f23": "wK", "f34": "rP", "f70": "wP"}, Layout(b))
}

func TestParseLayoutErrors(t *testing.T) {
	testCases := []struct {
		name   string
		layout string
	}{
		{"light square", "f22=wP"},
		{"off board", "f83=wP"},
		{"bad key", "g23=wP"},
		{"short key", "f2=wP"},
		{"bad owner", "f23=bP"},
		{"bad rank", "f23=wQ"},
		{"missing piece", "f23"},
		{"duplicate square", "f23=wP,f23=rP"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseLayoutString(tc.layout)
			require.ErrorIs(t, err, ErrInvalidLayout)
		})
	}
}

func TestParseLayoutStringEmpty(t *testing.T) {
	b, err := ParseLayoutString(" , ")
	require.NoError(t, err)
	assert.Equal(t, 0, b.Count(White))
	assert.Equal(t, 0, b.Count(Red))
}

func TestParsePlayer(t *testing.T) {
	testCases := []struct {
		in   string
		want Player
	}{
		{"white", White},
		{"W", White},
		{" Red ", Red},
		{"r", Red},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			p, err := ParsePlayer(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, p)
		})
	}

	_, err := ParsePlayer("black")
	require.ErrorIs(t, err, ErrUnknownPlayer)
}

func TestPlayerDirections(t *testing.T) {
	assert.Equal(t, Red, White.Opponent())
	assert.Equal(t, White, Red.Opponent())
	assert.Equal(t, South, White.Forward())
	assert.Equal(t, North, Red.Forward())
	assert.Equal(t, BoardSize-1, White.FarthestRow())
	assert.Equal(t, 0, Red.FarthestRow())
}
