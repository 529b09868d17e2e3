package model

// findCaptures returns one chain per maximal branch of the capture tree of pc.
// Continuations are searched on clones; b is never modified.
func findCaptures(pc Piece, b *Board) []*Move {
	var result []*Move
	for _, dest := range pc.Position.Neighbours(AllDirections, 2, pc.MaxDistance()+1) {
		victim, ok := capturable(pc, dest, b)
		if !ok {
			continue
		}

		capture := &Move{Piece: pc, Destination: dest, Captured: victim}
		following := findFollowingCaptures(capture, b)
		if len(following) == 0 {
			result = append(result, capture)
			continue
		}
		for _, next := range following {
			result = append(result, capture.withNext(next))
		}
	}
	return result
}

// capturable reports the single opposing piece pc would jump by landing on
// dest. Any friendly piece in between, a second opponent, or an occupied
// landing square rules the line out.
func capturable(pc Piece, dest Position, b *Board) (*Piece, bool) {
	var victim *Piece
	for _, pos := range between(pc.Position, dest) {
		occupant := b.At(pos)
		switch {
		case occupant == nil:
			continue
		case occupant.Owner == pc.Owner:
			return nil, false
		case victim != nil:
			return nil, false
		default:
			victim = occupant
		}
	}
	if victim == nil || b.At(dest) != nil {
		return nil, false
	}
	captured := *victim
	return &captured, true
}

func findFollowingCaptures(capture *Move, b *Board) []*Move {
	board := b.Clone()
	mover := mustRelocate(board, capture)
	return findCaptures(*mover, board)
}

// mustRelocate plays a capture found by capturable on a scratch board. It
// cannot fail for such a capture, so a failure is a bug.
func mustRelocate(board *Board, capture *Move) *Piece {
	mover := board.At(capture.From())
	victim := board.At(capture.Captured.Position)
	if err := board.Move(mover, capture.Destination); err != nil {
		panic(err)
	}
	if err := board.Remove(victim); err != nil {
		panic(err)
	}
	return mover
}

// findSimpleMoves returns the non-capturing steps of pc: forward only for a
// man, any diagonal for a king, over empty squares only.
func findSimpleMoves(pc Piece, b *Board) []*Move {
	dir := pc.Owner.Forward()
	if pc.IsKing() {
		dir = AllDirections
	}

	var moves []*Move
	for _, dest := range pc.Position.Neighbours(dir, 1, pc.MaxDistance()) {
		if hasClearPath(pc.Position, dest, b) {
			moves = append(moves, &Move{Piece: pc, Destination: dest})
		}
	}
	return moves
}

func hasClearPath(from, dest Position, b *Board) bool {
	for _, pos := range append(between(from, dest), dest) {
		if b.At(pos) != nil {
			return false
		}
	}
	return true
}
