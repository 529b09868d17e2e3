package model

import (
	"fmt"
	"strings"
)

type Player string

const (
	NoPlayer Player = ""
	White    Player = "white"
	Red      Player = "red"
)

// ParsePlayer accepts "white"/"red" or their initials, case-insensitively.
func ParsePlayer(s string) (Player, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white", "w":
		return White, nil
	case "red", "r":
		return Red, nil
	}
	return NoPlayer, fmt.Errorf("%w: %q", ErrUnknownPlayer, s)
}

func (p Player) Opponent() Player {
	switch p {
	case White:
		return Red
	case Red:
		return White
	}
	return NoPlayer
}

// Forward is the direction class a man of this player steps in.
// White starts on rows 0-2 and moves toward row 7, red the other way.
func (p Player) Forward() Direction {
	if p == White {
		return South
	}
	return North
}

// FarthestRow is the row on which a man of this player is promoted.
func (p Player) FarthestRow() int {
	if p == White {
		return BoardSize - 1
	}
	return 0
}

func (p Player) String() string {
	return string(p)
}
