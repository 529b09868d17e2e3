package model

import (
	"fmt"
	"sort"
	"strings"
)

// Positions can be described square by square. Keys name a dark square as
// "f" + row + col ("f23" is row 2, column 3); values name the occupant as
// owner initial + rank initial: "wP", "wK", "rP", "rK" (case-insensitive).

// ParseLayout builds a board holding exactly the given pieces. Pieces are
// created in row-major order so their identifiers do not depend on map order.
func ParseLayout(layout map[string]string) (*Board, error) {
	type entry struct {
		pos   Position
		owner Player
		rank  Rank
	}

	entries := make([]entry, 0, len(layout))
	for key, value := range layout {
		pos, err := parseSquare(key)
		if err != nil {
			return nil, err
		}
		owner, rank, err := parseOccupant(value)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry{pos: pos, owner: owner, rank: rank})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].pos.Row != entries[j].pos.Row {
			return entries[i].pos.Row < entries[j].pos.Row
		}
		return entries[i].pos.Col < entries[j].pos.Col
	})

	b := NewEmptyBoard()
	for _, e := range entries {
		if _, err := b.Add(e.owner, e.rank, e.pos); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidLayout, err)
		}
	}
	return b, nil
}

// ParseLayoutString parses the comma separated form "f23=wK,f34=rP".
func ParseLayoutString(s string) (*Board, error) {
	layout := make(map[string]string)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("%w: %q is not square=piece", ErrInvalidLayout, part)
		}
		key = strings.TrimSpace(key)
		if _, dup := layout[key]; dup {
			return nil, fmt.Errorf("%w: square %s given twice", ErrInvalidLayout, key)
		}
		layout[key] = strings.TrimSpace(value)
	}
	return ParseLayout(layout)
}

// Layout describes the pieces on a board in the notation ParseLayout reads.
func Layout(b *Board) map[string]string {
	layout := make(map[string]string)
	for _, row := range b.Grid() {
		for _, pc := range row {
			if pc == nil {
				continue
			}
			layout[SquareName(pc.Position)] = occupantName(*pc)
		}
	}
	return layout
}

func SquareName(p Position) string {
	return fmt.Sprintf("f%d%d", p.Row, p.Col)
}

func parseSquare(key string) (Position, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	if len(key) != 3 || key[0] != 'f' || key[1] < '0' || key[1] > '9' || key[2] < '0' || key[2] > '9' {
		return Position{}, fmt.Errorf("%w: bad square %q", ErrInvalidLayout, key)
	}
	pos := Position{Row: int(key[1] - '0'), Col: int(key[2] - '0')}
	if !pos.Playable() {
		return Position{}, fmt.Errorf("%w: %s is not a playable square", ErrInvalidLayout, key)
	}
	return pos, nil
}

func parseOccupant(value string) (Player, Rank, error) {
	value = strings.ToUpper(strings.TrimSpace(value))
	if len(value) != 2 {
		return NoPlayer, "", fmt.Errorf("%w: bad piece %q", ErrInvalidLayout, value)
	}

	var owner Player
	switch value[0] {
	case 'W':
		owner = White
	case 'R':
		owner = Red
	default:
		return NoPlayer, "", fmt.Errorf("%w: bad owner in %q", ErrInvalidLayout, value)
	}

	switch value[1] {
	case 'P':
		return owner, Man, nil
	case 'K':
		return owner, King, nil
	}
	return NoPlayer, "", fmt.Errorf("%w: bad rank in %q", ErrInvalidLayout, value)
}

func occupantName(pc Piece) string {
	rank := "P"
	if pc.IsKing() {
		rank = "K"
	}
	return strings.ToLower(pc.Owner.String()[:1]) + rank
}
