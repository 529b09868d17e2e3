package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func destinations(chains []*Move) []Position {
	var dests []Position
	for _, m := range chains {
		dests = append(dests, m.Destination)
	}
	return dests
}

func TestFindSimpleMoves(t *testing.T) {
	testCases := []struct {
		name   string
		layout string
		from   Position
		want   []Position
	}{
		{
			name:   "white man moves south",
			layout: "f23=wP",
			from:   pos(2, 3),
			want:   []Position{pos(3, 2), pos(3, 4)},
		},
		{
			name:   "red man moves north",
			layout: "f52=rP",
			from:   pos(5, 2),
			want:   []Position{pos(4, 1), pos(4, 3)},
		},
		{
			name:   "man on the edge",
			layout: "f27=wP",
			from:   pos(2, 7),
			want:   []Position{pos(3, 6)},
		},
		{
			name:   "blocked man",
			layout: "f23=wP,f32=rP,f34=wP",
			from:   pos(2, 3),
			want:   nil,
		},
		{
			name:   "king stops before a piece",
			layout: "f23=wK,f45=wP,f12=rP",
			from:   pos(2, 3),
			want: []Position{
				pos(1, 4), pos(0, 5),
				pos(3, 4),
				pos(3, 2), pos(4, 1), pos(5, 0),
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := mustLayout(t, tc.layout)
			pc := b.At(tc.from)
			require.NotNil(t, pc)

			moves := findSimpleMoves(*pc, b)
			assert.Equal(t, tc.want, destinations(moves))
			for _, m := range moves {
				assert.False(t, m.IsCapture())
				assert.Nil(t, m.Next)
				assert.Equal(t, *pc, m.Piece)
			}
		})
	}
}

func TestFindCapturesRules(t *testing.T) {
	testCases := []struct {
		name   string
		layout string
		from   Position
		want   []Position
	}{
		{
			name:   "man captures forward both ways",
			layout: "f23=wP,f32=rP,f34=rP",
			from:   pos(2, 3),
			want:   []Position{pos(4, 5), pos(4, 1)},
		},
		{
			name:   "man captures backwards",
			layout: "f43=wP,f32=rP",
			from:   pos(4, 3),
			want:   []Position{pos(2, 1)},
		},
		{
			name:   "landing square occupied",
			layout: "f23=wP,f34=rP,f45=rP",
			from:   pos(2, 3),
			want:   nil,
		},
		{
			name:   "friendly piece on the line",
			layout: "f23=wK,f34=wP,f45=rP",
			from:   pos(2, 3),
			want:   nil,
		},
		{
			name:   "two opponents on the line",
			layout: "f01=wK,f12=rP,f23=rP",
			from:   pos(0, 1),
			want:   nil,
		},
		{
			name:   "king lands anywhere past a distant victim",
			layout: "f01=wK,f34=rP",
			from:   pos(0, 1),
			want:   []Position{pos(4, 5), pos(5, 6), pos(6, 7)},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := mustLayout(t, tc.layout)
			pc := b.At(tc.from)
			require.NotNil(t, pc)

			chains := findCaptures(*pc, b)
			assert.Equal(t, tc.want, destinations(chains))
			for _, m := range chains {
				assert.True(t, m.IsCapture())
			}
		})
	}
}

func TestFindCapturesBranches(t *testing.T) {
	b := mustLayout(t, "f23=wP,f34=rP,f54=rP,f56=rP")
	before := b.Grid()
	victim := b.At(pos(3, 4))

	chains := findCaptures(*b.At(pos(2, 3)), b)
	require.Len(t, chains, 2)

	for _, chain := range chains {
		assert.Equal(t, pos(4, 5), chain.Destination)
		assert.Equal(t, victim.ID, chain.Captured.ID)
		require.NotNil(t, chain.Next)
		assert.Equal(t, pos(4, 5), chain.Next.From())
		assert.Nil(t, chain.Next.Next)
	}
	assert.Equal(t, pos(6, 7), chains[0].Next.Destination)
	assert.Equal(t, pos(5, 6), chains[0].Next.Captured.Position)
	assert.Equal(t, pos(6, 3), chains[1].Next.Destination)
	assert.Equal(t, pos(5, 4), chains[1].Next.Captured.Position)
	assert.Equal(t, "(2,3)-(4,5)x(3,4)-(6,7)x(5,6)", chains[0].String())

	// the search works on clones
	assert.Equal(t, before, b.Grid())
	assert.Equal(t, 3, b.Count(Red))
}

func TestFindCapturesManDoesNotPromoteMidSearch(t *testing.T) {
	b := mustLayout(t, "f52=wP,f63=rP,f65=rP,f21=rP")

	chains := findCaptures(*b.At(pos(5, 2)), b)
	require.Len(t, chains, 1)
	assert.Equal(t, "(5,2)-(7,4)x(6,3)-(5,6)x(6,5)", chains[0].String())
	assert.Equal(t, Man, chains[0].Next.Piece.Rank)
}
