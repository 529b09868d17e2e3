package model

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

type State string

const (
	AwaitingMove State = "awaitingMove"
	Continuing   State = "continuing"
	Ended        State = "ended"
)

// Game drives a single match: it asks the generator for legal moves, applies
// the one the caller picks and keeps track of whose turn it is. The live board
// is only ever changed by ApplyMove. A Game is not safe for concurrent use.
type Game struct {
	board         *Board
	currentPlayer Player
	pending       *Move // rest of the chain being played
	winner        Player
}

// NewGame returns a game in the starting position with white to move.
// Options may replace the board or the side to move.
//
// Example:
//
//	board, _ := ParseLayout(map[string]string{"f23": "wK", "f34": "rP"})
//	game := NewGame(WithBoard(board), WithStartingPlayer(Red))
func NewGame(options ...func(*Game)) *Game {
	g := &Game{
		board:         NewBoard(),
		currentPlayer: White,
	}
	for _, f := range options {
		if f != nil {
			f(g)
		}
	}
	g.evaluateStatus()
	return g
}

func WithBoard(b *Board) func(*Game) {
	return func(g *Game) {
		g.board = b
	}
}

func WithStartingPlayer(p Player) func(*Game) {
	return func(g *Game) {
		g.currentPlayer = p
	}
}

// PossibleMoves returns the legal chains for the player to move. In the middle
// of a chain the only option is the rest of the chain already chosen. If the
// player has nothing to play the game ends and the result names the winner.
func (g *Game) PossibleMoves() Options {
	if g.winner != NoPlayer {
		return Options{Winner: g.winner}
	}
	if g.pending != nil {
		return g.continuation()
	}
	opts := Generate(g.currentPlayer, g.board, nil)
	if opts.GameOver() {
		g.end(opts.Winner)
	}
	return opts
}

// continuation offers exactly the pending sub-chain. The head's piece snapshot
// is refreshed from the board, so a man promoted mid-chain shows as a king.
func (g *Game) continuation() Options {
	head := *g.pending
	if pc := g.board.Find(head.Piece.ID); pc != nil {
		head.Piece = *pc
	}
	return Options{Moves: []PieceMoves{{Piece: head.Piece, Chains: []*Move{&head}}}}
}

// ApplyMove plays the first link of a chain returned by PossibleMoves. A move
// that is not currently legal is a contract violation and is rejected with
// ErrInvalidMove without touching the board.
func (g *Game) ApplyMove(move *Move) error {
	if g.winner != NoPlayer {
		return ErrGameOver
	}
	if move == nil {
		return fmt.Errorf("%w: nil move", ErrInvalidMove)
	}

	opts := g.PossibleMoves()
	if opts.GameOver() {
		return ErrGameOver
	}
	legal, ok := opts.Find(move)
	if !ok {
		return fmt.Errorf("%w: %s is not legal for %s", ErrInvalidMove, move, g.currentPlayer)
	}

	mover := g.board.At(legal.From())
	if mover == nil || mover.ID != legal.Piece.ID {
		return fmt.Errorf("%w: no piece %d at %s", ErrInvalidMove, legal.Piece.ID, legal.From())
	}
	var victim *Piece
	if legal.Captured != nil {
		victim = g.board.At(legal.Captured.Position)
		if victim == nil || victim.ID != legal.Captured.ID {
			return fmt.Errorf("%w: no piece %d at %s", ErrInvalidMove, legal.Captured.ID, legal.Captured.Position)
		}
	}

	if err := g.board.Move(mover, legal.Destination); err != nil {
		return err
	}
	if victim != nil {
		if err := g.board.Remove(victim); err != nil {
			return err
		}
	}

	if !mover.IsKing() && mover.Position.Row == mover.Owner.FarthestRow() {
		mover = g.board.Promote(mover)
		log.Debug().Int("piece", int(mover.ID)).Str("player", mover.Owner.String()).
			Str("square", mover.Position.String()).Msg("promoted to king")
	}

	if legal.Next != nil {
		g.pending = legal.Next
		return nil
	}

	g.pending = nil
	g.switchTurn()
	g.evaluateStatus()
	return nil
}

func (g *Game) switchTurn() {
	g.currentPlayer = g.currentPlayer.Opponent()
	log.Debug().Str("player", g.currentPlayer.String()).Msg("turn passed")
}

// evaluateStatus ends the game as soon as the player to move has no options.
func (g *Game) evaluateStatus() {
	if opts := Generate(g.currentPlayer, g.board, nil); opts.GameOver() {
		g.end(opts.Winner)
	}
}

func (g *Game) end(winner Player) {
	if g.winner != NoPlayer {
		return
	}
	g.winner = winner
	g.pending = nil
	log.Debug().Str("winner", winner.String()).Msg("game over")
}

// Board returns a snapshot of the board.
func (g *Game) Board() [BoardSize][BoardSize]*Piece {
	return g.board.Grid()
}

func (g *Game) CurrentPlayer() Player {
	return g.currentPlayer
}

// Continues reports whether the current player is in the middle of a capture
// chain and must move the same piece again.
func (g *Game) Continues() bool {
	return g.pending != nil
}

// ContinuingPiece returns the piece that must continue the chain, if any.
func (g *Game) ContinuingPiece() (Piece, bool) {
	if g.pending == nil {
		return Piece{}, false
	}
	if pc := g.board.Find(g.pending.Piece.ID); pc != nil {
		return *pc, true
	}
	return g.pending.Piece, true
}

// Winner is NoPlayer while the game is in progress.
func (g *Game) Winner() Player {
	return g.winner
}

func (g *Game) State() State {
	switch {
	case g.winner != NoPlayer:
		return Ended
	case g.pending != nil:
		return Continuing
	default:
		return AwaitingMove
	}
}

// Layout describes the current position in layout notation.
func (g *Game) Layout() map[string]string {
	return Layout(g.board)
}

// PieceCount returns how many pieces a player has left.
func (g *Game) PieceCount(p Player) int {
	return g.board.Count(p)
}
