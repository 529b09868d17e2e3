package model

import "fmt"

type vector struct {
	dr, dc int
}

var (
	nw = vector{-1, -1}
	ne = vector{-1, 1}
	se = vector{1, 1}
	sw = vector{1, -1}
)

// Direction is an ordered set of diagonal unit vectors. The order is part of
// the contract: Neighbours enumerates directions in this order, so callers that
// number the results get stable identifiers.
type Direction []vector

var (
	NorthWest     = Direction{nw}
	NorthEast     = Direction{ne}
	SouthEast     = Direction{se}
	SouthWest     = Direction{sw}
	North         = Direction{nw, ne}
	South         = Direction{sw, se}
	AllDirections = Direction{nw, ne, se, sw}
)

// Neighbours returns the on-board squares lying on the given diagonals at a
// distance between minDist and maxDist inclusive, direction by direction and
// nearest first within each direction.
func (p Position) Neighbours(dir Direction, minDist, maxDist int) []Position {
	var result []Position
	for _, v := range dir {
		for dist := minDist; dist <= maxDist; dist++ {
			target := Position{Row: p.Row + v.dr*dist, Col: p.Col + v.dc*dist}
			if boundaryCheck(target) {
				result = append(result, target)
			}
		}
	}
	return result
}

// between returns the squares strictly between from and to. Both squares must
// share a diagonal; anything else is a programming error.
func between(from, to Position) []Position {
	dr := to.Row - from.Row
	dc := to.Col - from.Col
	if dr == 0 || abs(dr) != abs(dc) {
		panic(fmt.Errorf("%w: %s -> %s", ErrGeometry, from, to))
	}

	length := abs(dr)
	step := vector{dr / length, dc / length}
	squares := make([]Position, 0, length-1)
	for i := 1; i < length; i++ {
		squares = append(squares, Position{Row: from.Row + step.dr*i, Col: from.Col + step.dc*i})
	}
	return squares
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
