package model

// PieceMoves is the set of legal chains for one piece.
type PieceMoves struct {
	Piece  Piece   `json:"piece"`
	Chains []*Move `json:"chains"`
}

// Options is the result of move generation: either the legal chains per piece
// (in board scan order) or, when there are none, the winner.
type Options struct {
	Moves  []PieceMoves `json:"moves,omitempty"`
	Winner Player       `json:"winner,omitempty"`
}

func (o Options) GameOver() bool {
	return o.Winner != NoPlayer
}

// Captures reports whether the options are capture chains. Mandatory capture
// means either all of them are or none is.
func (o Options) Captures() bool {
	return len(o.Moves) > 0 && o.Moves[0].Chains[0].IsCapture()
}

// For returns the chains of one piece.
func (o Options) For(id PieceID) []*Move {
	for _, pm := range o.Moves {
		if pm.Piece.ID == id {
			return pm.Chains
		}
	}
	return nil
}

// Find returns the legal chain m selects. A chain matching m link for link
// wins; otherwise the first chain whose first link matches m is used. Sibling
// branches share their first link, so only a full chain picks a later branch.
func (o Options) Find(m *Move) (*Move, bool) {
	chains := o.For(m.Piece.ID)
	for _, chain := range chains {
		if sameChain(chain, m) {
			return chain, true
		}
	}
	for _, chain := range chains {
		if sameLink(chain, m) {
			return chain, true
		}
	}
	return nil, false
}

// Generate computes every legal chain for player. When continuing is set the
// search is restricted to that piece. A capture anywhere makes captures
// mandatory for every piece, and only chains of the longest available length
// survive. With nothing to play the opponent is reported as winner.
func Generate(player Player, b *Board, continuing *Piece) Options {
	pieces := candidates(player, b, continuing)

	if moves := collect(pieces, b, findCaptures); len(moves) > 0 {
		return Options{Moves: keepLongest(moves)}
	}
	if moves := collect(pieces, b, findSimpleMoves); len(moves) > 0 {
		return Options{Moves: moves}
	}
	return Options{Winner: player.Opponent()}
}

func candidates(player Player, b *Board, continuing *Piece) []*Piece {
	if continuing == nil {
		return b.Pieces(player)
	}
	if pc := b.Find(continuing.ID); pc != nil {
		return []*Piece{pc}
	}
	return nil
}

func collect(pieces []*Piece, b *Board, finder func(Piece, *Board) []*Move) []PieceMoves {
	var all []PieceMoves
	for _, pc := range pieces {
		if chains := finder(*pc, b); len(chains) > 0 {
			all = append(all, PieceMoves{Piece: *pc, Chains: chains})
		}
	}
	return all
}

// keepLongest drops every chain shorter than the longest chain of any piece,
// and any piece left without chains.
func keepLongest(all []PieceMoves) []PieceMoves {
	longest := 0
	for _, pm := range all {
		for _, chain := range pm.Chains {
			if n := chain.Len(); n > longest {
				longest = n
			}
		}
	}

	var kept []PieceMoves
	for _, pm := range all {
		var chains []*Move
		for _, chain := range pm.Chains {
			if chain.Len() == longest {
				chains = append(chains, chain)
			}
		}
		if len(chains) > 0 {
			kept = append(kept, PieceMoves{Piece: pm.Piece, Chains: chains})
		}
	}
	return kept
}
