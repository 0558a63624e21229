package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

const (
	StatusOngoing   = "ongoing"
	StatusRoundOver = "round_over"
	StatusGameOver  = "game_over"

	BotMark   = "O"
	HumanMark = "X"

	TieMark = "-"
)

// Game holds one match: the board for the current round plus the score and
// round bookkeeping that survives round resets.
type Game struct {
	ID          string    `json:"id"`
	Board       Board     `json:"board"`
	Players     []*Player `json:"players"`
	Turn        string    `json:"player_turn"`
	FirstMover  string    `json:"first_mover"`
	Round       int       `json:"round"`
	Status      string    `json:"status"`
	RoundWinner string    `json:"round_winner,omitempty"`
	Winner      string    `json:"winner,omitempty"`
	WinTarget   int       `json:"win_target"`
}

func NewGame(id string, human, bot *Player, firstMover string, winTarget int) *Game {
	return &Game{
		ID:         id,
		Players:    []*Player{human, bot},
		Turn:       firstMover,
		FirstMover: firstMover,
		Round:      1,
		Status:     StatusOngoing,
		WinTarget:  winTarget,
	}
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsRoundOver() bool {
	return that.Status == StatusRoundOver
}

func (that *Game) IsGameOver() bool {
	return that.Status == StatusGameOver
}

// PlayerByMark - resolves a mark to its player.
func (that *Game) PlayerByMark(mark string) (*Player, error) {
	for _, player := range that.Players {
		if player.Mark == mark {
			return player, nil
		}
	}

	return nil, fmt.Errorf("%w: mark %q", apperror.ErrPlayerNotFound, mark)
}

// Opponent - returns the player whose mark is not the given one.
func (that *Game) Opponent(mark string) (*Player, error) {
	for _, player := range that.Players {
		if player.Mark != mark {
			return player, nil
		}
	}

	return nil, fmt.Errorf("%w: opponent of %q", apperror.ErrPlayerNotFound, mark)
}

// MakeTurn - applies one move for the given mark and settles the round state:
// a completed line finishes the round in favor of the mover, a full board
// finishes it as a tie, otherwise the turn passes to the opponent.
func (that *Game) MakeTurn(mark string, cell int) error {
	if that.IsGameOver() {
		return apperror.ErrGameOver
	}

	if !that.IsOngoing() {
		return apperror.ErrRoundOver
	}

	if that.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	if err := that.Board.Apply(cell, mark); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	switch {
	case that.Board.SomeoneWon():
		winner, err := that.PlayerByMark(that.Board.WinningMark())
		if err != nil {
			return fmt.Errorf("failed to resolve round winner: %w", err)
		}

		winner.Score++
		that.RoundWinner = winner.Mark
		that.Status = StatusRoundOver
		that.Turn = ""
	case that.Board.IsFull():
		that.RoundWinner = TieMark
		that.Status = StatusRoundOver
		that.Turn = ""
	default:
		opponent, err := that.Opponent(mark)
		if err != nil {
			return fmt.Errorf("failed to resolve opponent: %w", err)
		}

		that.Turn = opponent.Mark
	}

	return nil
}

// Leader - returns the player who reached the win target, or nil if the
// game should continue.
func (that *Game) Leader() *Player {
	for _, player := range that.Players {
		if player.Score >= that.WinTarget {
			return player
		}
	}

	return nil
}

// AdvanceRound - moves from a finished round either to the next round or,
// when a player has reached the win target, to the end of the game.
func (that *Game) AdvanceRound() error {
	if !that.IsRoundOver() {
		return fmt.Errorf("%w: status %s", apperror.ErrRoundNotOver, that.Status)
	}

	if leader := that.Leader(); leader != nil {
		that.Winner = leader.Mark
		that.Status = StatusGameOver

		return nil
	}

	that.Round++
	that.Board.Reset()
	that.RoundWinner = ""
	that.Turn = that.FirstMover
	that.Status = StatusOngoing

	return nil
}

// Reset - starts the match over: scores and round counter back to their
// initial values, board cleared, first mover on turn again.
func (that *Game) Reset() {
	for _, player := range that.Players {
		player.Score = 0
	}

	that.Board.Reset()
	that.Round = 1
	that.RoundWinner = ""
	that.Winner = ""
	that.Turn = that.FirstMover
	that.Status = StatusOngoing
}
