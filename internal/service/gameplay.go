package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

var ErrHumanNotFound = errors.New("human player not found")

type GamePlayService interface {
	MakeHumanTurn(game *entity.Game, cell int) error
	MakeBotTurn(game *entity.Game) error
	AdvanceRound(game *entity.Game) error
	RestartGame(game *entity.Game)
}

type gamePlayService struct {
	logger *slog.Logger

	botService BotService
}

func NewGamePlayService(logger *slog.Logger, botService BotService) GamePlayService {
	return &gamePlayService{
		logger: logger.With("component", "gameplay"),

		botService: botService,
	}
}

// MakeHumanTurn - applies the human player's move. The cell must already be
// validated against the board's unmarked cells by the caller.
func (that *gamePlayService) MakeHumanTurn(game *entity.Game, cell int) error {
	var humanPlayer *entity.Player
	for _, player := range game.Players {
		if !player.IsBot() {
			humanPlayer = player
			break
		}
	}

	if humanPlayer == nil {
		return ErrHumanNotFound
	}

	if err := game.MakeTurn(humanPlayer.Mark, cell); err != nil {
		return fmt.Errorf("failed to make human turn: %w", err)
	}

	that.logger.Debug("human turn applied", "game", game.ID, "cell", cell, "status", game.Status)

	return nil
}

func (that *gamePlayService) MakeBotTurn(game *entity.Game) error {
	if err := that.botService.MakeTurn(game); err != nil {
		return fmt.Errorf("failed to make bot turn: %w", err)
	}

	that.logger.Debug("bot turn applied", "game", game.ID, "status", game.Status)

	return nil
}

func (that *gamePlayService) AdvanceRound(game *entity.Game) error {
	if err := game.AdvanceRound(); err != nil {
		return fmt.Errorf("failed to advance round: %w", err)
	}

	that.logger.Debug("round advanced", "game", game.ID, "round", game.Round, "status", game.Status)

	return nil
}

func (that *gamePlayService) RestartGame(game *entity.Game) {
	game.Reset()

	that.logger.Debug("game restarted", "game", game.ID)
}
