package service

import (
	"github.com/benbeisheim/checkers-backend/internal/model"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Link is one step of a chain as returned to clients.
type Link struct {
	From     model.Position  `json:"from"`
	To       model.Position  `json:"to"`
	Captured *model.Position `json:"captured,omitempty"`
}

type PieceMoves struct {
	Piece  model.Piece `json:"piece"`
	Square string      `json:"square"`
	Chains [][]Link    `json:"chains"`
}

type Analysis struct {
	ID       string            `json:"id"`
	Player   model.Player      `json:"player"`
	Layout   map[string]string `json:"layout"`
	Captures bool              `json:"captures"`
	GameOver bool              `json:"gameOver"`
	Winner   model.Player      `json:"winner,omitempty"`
	Moves    []PieceMoves      `json:"moves"`
}

// AnalysisService answers "what can be played here" for arbitrary positions.
// Every call works on its own game, so the service is safe for concurrent use.
type AnalysisService struct{}

func NewAnalysisService() *AnalysisService {
	return &AnalysisService{}
}

// Start analyses the initial position with white to move.
func (as *AnalysisService) Start() Analysis {
	return as.analyze(model.NewGame())
}

// Analyze parses a layout and the player to move and returns their options.
// An empty player means white.
func (as *AnalysisService) Analyze(layout map[string]string, player string) (Analysis, error) {
	board, err := model.ParseLayout(layout)
	if err != nil {
		return Analysis{}, err
	}
	return as.analyzeBoard(board, player)
}

// AnalyzeString is Analyze for the comma separated layout notation.
func (as *AnalysisService) AnalyzeString(layout string, player string) (Analysis, error) {
	board, err := model.ParseLayoutString(layout)
	if err != nil {
		return Analysis{}, err
	}
	return as.analyzeBoard(board, player)
}

func (as *AnalysisService) analyzeBoard(board *model.Board, player string) (Analysis, error) {
	toMove := model.White
	if player != "" {
		var err error
		if toMove, err = model.ParsePlayer(player); err != nil {
			return Analysis{}, err
		}
	}
	return as.analyze(model.NewGame(model.WithBoard(board), model.WithStartingPlayer(toMove))), nil
}

func (as *AnalysisService) analyze(game *model.Game) Analysis {
	opts := game.PossibleMoves()

	result := Analysis{
		ID:       uuid.New().String(),
		Player:   game.CurrentPlayer(),
		Layout:   game.Layout(),
		Captures: opts.Captures(),
		GameOver: opts.GameOver(),
		Winner:   opts.Winner,
		Moves:    make([]PieceMoves, 0, len(opts.Moves)),
	}
	for _, pm := range opts.Moves {
		chains := make([][]Link, 0, len(pm.Chains))
		for _, chain := range pm.Chains {
			chains = append(chains, flatten(chain))
		}
		result.Moves = append(result.Moves, PieceMoves{
			Piece:  pm.Piece,
			Square: model.SquareName(pm.Piece.Position),
			Chains: chains,
		})
	}

	log.Debug().Str("analysis", result.ID).Str("player", result.Player.String()).
		Int("pieces", len(result.Moves)).Bool("gameOver", result.GameOver).Msg("position analysed")
	return result
}

func flatten(chain *model.Move) []Link {
	links := make([]Link, 0, chain.Len())
	for _, m := range chain.Links() {
		link := Link{From: m.From(), To: m.Destination}
		if m.Captured != nil {
			captured := m.Captured.Position
			link.Captured = &captured
		}
		links = append(links, link)
	}
	return links
}
