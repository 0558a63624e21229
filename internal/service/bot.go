package service

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

var (
	ErrBotNotFound      = errors.New("bot player not found")
	ErrNoAvailableMoves = errors.New("no available moves")
)

type BotService interface {
	PickCell(board *entity.Board, ownMark, opponentMark string) (int, error)
	MakeTurn(game *entity.Game) error
}

type botService struct {
	rng *rand.Rand
}

func NewBotService(rng *rand.Rand) BotService {
	return &botService{rng: rng}
}

// PickCell - chooses the bot's cell by fixed priority: complete an own line,
// block the opponent's line, take the center, otherwise pick a random free
// cell. The order is significant.
func (that *botService) PickCell(board *entity.Board, ownMark, opponentMark string) (int, error) {
	if cell, ok := board.FindAtRiskCell(ownMark); ok {
		return cell, nil
	}

	if cell, ok := board.FindAtRiskCell(opponentMark); ok {
		return cell, nil
	}

	if board.IsCenterUnmarked() {
		return entity.CenterCell, nil
	}

	availableCells := board.UnmarkedCells()
	if len(availableCells) == 0 {
		return -1, ErrNoAvailableMoves
	}

	return availableCells[that.rng.Intn(len(availableCells))], nil
}

func (that *botService) MakeTurn(game *entity.Game) error {
	var botPlayer *entity.Player
	for _, player := range game.Players {
		if player.IsBot() {
			botPlayer = player
			break
		}
	}

	if botPlayer == nil {
		return ErrBotNotFound
	}

	opponent, err := game.Opponent(botPlayer.Mark)
	if err != nil {
		return fmt.Errorf("failed to resolve bot opponent: %w", err)
	}

	chosenCell, err := that.PickCell(&game.Board, botPlayer.Mark, opponent.Mark)
	if err != nil {
		return fmt.Errorf("bot failed to pick a cell: %w", err)
	}

	if err = game.MakeTurn(botPlayer.Mark, chosenCell); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	return nil
}
