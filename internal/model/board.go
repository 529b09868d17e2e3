package model

import "fmt"

const BoardSize = 8

type Rank string

const (
	Man  Rank = "man"
	King Rank = "king"
)

type PieceID int

type Piece struct {
	ID       PieceID  `json:"id"`
	Owner    Player   `json:"owner"`
	Rank     Rank     `json:"rank"`
	Position Position `json:"position"`
}

// MaxDistance is how far the piece may travel along a diagonal in one step.
func (p Piece) MaxDistance() int {
	if p.Rank == King {
		return BoardSize - 1
	}
	return 1
}

func (p Piece) IsKing() bool {
	return p.Rank == King
}

type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Playable reports whether the square is a dark square on the board.
func (p Position) Playable() bool {
	return boundaryCheck(p) && (p.Row+p.Col)%2 == 1
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

func boundaryCheck(p Position) bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

// Board owns every square of a single game. A nil cell is an empty square.
// Identifiers and per-owner counts live here rather than in package state so
// that any number of games can run side by side.
type Board struct {
	cells  [BoardSize][BoardSize]*Piece
	nextID PieceID
	count  map[Player]int
}

func NewEmptyBoard() *Board {
	return &Board{
		nextID: 1,
		count:  map[Player]int{White: 0, Red: 0},
	}
}

// NewBoard returns the starting position: twelve white men on rows 0-2 and
// twelve red men on rows 5-7.
func NewBoard() *Board {
	b := NewEmptyBoard()
	for row := 0; row < BoardSize; row++ {
		var owner Player
		switch {
		case row < 3:
			owner = White
		case row >= BoardSize-3:
			owner = Red
		default:
			continue
		}
		for col := 0; col < BoardSize; col++ {
			pos := Position{Row: row, Col: col}
			if pos.Playable() {
				b.put(&Piece{ID: b.allocateID(), Owner: owner, Rank: Man}, pos)
				b.count[owner]++
			}
		}
	}
	return b
}

func (b *Board) allocateID() PieceID {
	id := b.nextID
	b.nextID++
	return id
}

// Add creates a new piece on an empty playable square.
func (b *Board) Add(owner Player, rank Rank, pos Position) (*Piece, error) {
	if owner != White && owner != Red {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPlayer, owner)
	}
	if rank != Man && rank != King {
		return nil, fmt.Errorf("%w: unknown rank %q", ErrInvalidLayout, rank)
	}
	if err := b.checkFree(pos); err != nil {
		return nil, err
	}
	pc := &Piece{ID: b.allocateID(), Owner: owner, Rank: rank}
	b.put(pc, pos)
	b.count[owner]++
	return pc, nil
}

// At returns the occupant of a square, or nil if it is empty or off the board.
func (b *Board) At(pos Position) *Piece {
	if !boundaryCheck(pos) {
		return nil
	}
	return b.cells[pos.Row][pos.Col]
}

// Find returns the living piece with the given id.
func (b *Board) Find(id PieceID) *Piece {
	for row := range b.cells {
		for _, pc := range b.cells[row] {
			if pc != nil && pc.ID == id {
				return pc
			}
		}
	}
	return nil
}

// PickUp lifts a piece off its square, leaving the square empty.
func (b *Board) PickUp(pc *Piece) (*Piece, error) {
	if pc == nil || b.At(pc.Position) != pc {
		return nil, ErrPieceNotOnBoard
	}
	b.cells[pc.Position.Row][pc.Position.Col] = nil
	return pc, nil
}

// Put places a piece on an empty playable square and records its new position.
func (b *Board) Put(pc *Piece, pos Position) error {
	if err := b.checkFree(pos); err != nil {
		return err
	}
	b.put(pc, pos)
	return nil
}

// Replace puts a lifted piece back on the square it records.
func (b *Board) Replace(pc *Piece) error {
	return b.Put(pc, pc.Position)
}

func (b *Board) put(pc *Piece, pos Position) {
	b.cells[pos.Row][pos.Col] = pc
	pc.Position = pos
}

// Move relocates a piece. The destination is checked before the piece is
// lifted so a failed move leaves the board untouched.
func (b *Board) Move(pc *Piece, dest Position) error {
	if err := b.checkFree(dest); err != nil {
		return err
	}
	if _, err := b.PickUp(pc); err != nil {
		return err
	}
	b.put(pc, dest)
	return nil
}

// Remove takes a captured piece off the board for good.
func (b *Board) Remove(pc *Piece) error {
	if _, err := b.PickUp(pc); err != nil {
		return err
	}
	b.count[pc.Owner]--
	return nil
}

// Promote replaces a man with a king of the same identity, owner and square.
func (b *Board) Promote(pc *Piece) *Piece {
	king := &Piece{ID: pc.ID, Owner: pc.Owner, Rank: King, Position: pc.Position}
	b.cells[pc.Position.Row][pc.Position.Col] = king
	return king
}

func (b *Board) checkFree(pos Position) error {
	if !pos.Playable() {
		return fmt.Errorf("%w: %s is not a playable square", ErrInvalidMove, pos)
	}
	if b.At(pos) != nil {
		return fmt.Errorf("%w: %s is occupied", ErrInvalidMove, pos)
	}
	return nil
}

// Pieces returns the living pieces of a player in row-major order.
func (b *Board) Pieces(player Player) []*Piece {
	var pieces []*Piece
	for row := range b.cells {
		for _, pc := range b.cells[row] {
			if pc != nil && pc.Owner == player {
				pieces = append(pieces, pc)
			}
		}
	}
	return pieces
}

func (b *Board) Count(player Player) int {
	return b.count[player]
}

// Grid returns a snapshot of the board. The pieces are copies, so callers
// cannot reach the live board through it.
func (b *Board) Grid() [BoardSize][BoardSize]*Piece {
	var grid [BoardSize][BoardSize]*Piece
	for row := range b.cells {
		for col, pc := range b.cells[row] {
			if pc != nil {
				cp := *pc
				grid[row][col] = &cp
			}
		}
	}
	return grid
}

// Clone returns a fully independent copy for speculative search.
func (b *Board) Clone() *Board {
	clone := &Board{
		nextID: b.nextID,
		count:  make(map[Player]int, len(b.count)),
	}
	for player, n := range b.count {
		clone.count[player] = n
	}
	for row := range b.cells {
		for col, pc := range b.cells[row] {
			if pc != nil {
				cp := *pc
				clone.cells[row][col] = &cp
			}
		}
	}
	return clone
}
