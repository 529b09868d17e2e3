package model

import "errors"

var (
	ErrInvalidMove     = errors.New("invalid move")
	ErrGameOver        = errors.New("game over")
	ErrGeometry        = errors.New("squares do not share a diagonal")
	ErrInvalidLayout   = errors.New("invalid layout")
	ErrUnknownPlayer   = errors.New("unknown player")
	ErrPieceNotOnBoard = errors.New("piece not on board")
)
