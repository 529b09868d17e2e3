package model

import (
	"fmt"
	"strings"
)

// Move is one link of a move chain. Piece is a snapshot of the mover as it
// stood before this link, so Piece.Position is the origin square. Next is set
// when the capture must be continued by the same piece in the same turn.
// Chains produced by the generator are never modified afterwards.
type Move struct {
	Piece       Piece    `json:"piece"`
	Destination Position `json:"destination"`
	Captured    *Piece   `json:"captured,omitempty"`
	Next        *Move    `json:"next,omitempty"`
}

func (m *Move) From() Position {
	return m.Piece.Position
}

func (m *Move) IsCapture() bool {
	return m.Captured != nil
}

// Len is the number of links in the chain starting at m.
func (m *Move) Len() int {
	n := 0
	for link := m; link != nil; link = link.Next {
		n++
	}
	return n
}

// Links flattens the chain.
func (m *Move) Links() []*Move {
	links := make([]*Move, 0, m.Len())
	for link := m; link != nil; link = link.Next {
		links = append(links, link)
	}
	return links
}

// withNext returns a copy of the link continued by next.
func (m *Move) withNext(next *Move) *Move {
	cp := *m
	cp.Next = next
	return &cp
}

// sameLink compares the link itself, ignoring what follows it.
func sameLink(a, b *Move) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Piece.ID != b.Piece.ID || a.From() != b.From() || a.Destination != b.Destination {
		return false
	}
	if a.Captured == nil || b.Captured == nil {
		return a.Captured == nil && b.Captured == nil
	}
	return a.Captured.ID == b.Captured.ID && a.Captured.Position == b.Captured.Position
}

func sameChain(a, b *Move) bool {
	for ; a != nil && b != nil; a, b = a.Next, b.Next {
		if !sameLink(a, b) {
			return false
		}
	}
	return a == nil && b == nil
}

// String renders the chain as "(5,2)-(7,4)x(6,3)-(5,6)x(6,5)".
func (m *Move) String() string {
	if m == nil {
		return "<nil>"
	}
	var sb strings.Builder
	sb.WriteString(m.From().String())
	for link := m; link != nil; link = link.Next {
		sb.WriteString("-")
		sb.WriteString(link.Destination.String())
		if link.Captured != nil {
			sb.WriteString(fmt.Sprintf("x%s", link.Captured.Position))
		}
	}
	return sb.String()
}
