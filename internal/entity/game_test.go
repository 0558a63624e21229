package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

func newTestGame(winTarget int) *Game {
	human := NewHumanPlayer("Alice", HumanMark)
	bot := NewBotPlayer("Hal", BotMark)

	return NewGame("123", human, bot, HumanMark, winTarget)
}

func TestGame_MakeTurn(t *testing.T) {
	t.Run("Successful turn passes the move to the opponent", func(t *testing.T) {
		// Given: a fresh game with the human on turn
		game := newTestGame(3)

		// When: the human marks a free cell
		err := game.MakeTurn(HumanMark, 0)

		// Then: the board holds the mark and the bot is on turn
		require.NoError(t, err)
		assert.Equal(t, HumanMark, game.Board[0])
		assert.Equal(t, BotMark, game.Turn)
		assert.Equal(t, StatusOngoing, game.Status)
	})

	t.Run("Returns ErrNotYourTurn when moving out of order", func(t *testing.T) {
		// Given: a fresh game with the human on turn
		game := newTestGame(3)

		// When: the bot tries to move
		err := game.MakeTurn(BotMark, 0)

		// Then: the move is rejected
		assert.ErrorIs(t, err, apperror.ErrNotYourTurn)
	})

	t.Run("Returns ErrCellOccupied for a taken cell", func(t *testing.T) {
		// Given: a game where cell 0 is taken
		game := newTestGame(3)
		require.NoError(t, game.MakeTurn(HumanMark, 0))

		// When: the bot marks the same cell
		err := game.MakeTurn(BotMark, 0)

		// Then: the move is rejected and the turn does not flip
		assert.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, BotMark, game.Turn)
	})

	t.Run("Completing a line finishes the round and scores it", func(t *testing.T) {
		// Given: a game where the human is about to complete the top row
		game := newTestGame(3)
		game.Board = Board{HumanMark, HumanMark, "", BotMark, BotMark, "", "", "", ""}

		// When: the human completes the row
		err := game.MakeTurn(HumanMark, 2)

		// Then: the round is over and the human scored
		require.NoError(t, err)
		assert.Equal(t, StatusRoundOver, game.Status)
		assert.Equal(t, HumanMark, game.RoundWinner)
		assert.Equal(t, "", game.Turn)

		human, err := game.PlayerByMark(HumanMark)
		require.NoError(t, err)
		assert.Equal(t, 1, human.Score)
	})

	t.Run("Filling the board without a line is a tie", func(t *testing.T) {
		// Given: a board one move from a tie
		game := newTestGame(3)
		game.Board = Board{
			HumanMark, BotMark, HumanMark,
			BotMark, HumanMark, BotMark,
			BotMark, "", BotMark,
		}

		// When: the human fills the last cell
		err := game.MakeTurn(HumanMark, 7)

		// Then: the round ends in a tie and nobody scores
		require.NoError(t, err)
		assert.Equal(t, StatusRoundOver, game.Status)
		assert.Equal(t, TieMark, game.RoundWinner)

		for _, player := range game.Players {
			assert.Zero(t, player.Score)
		}
	})

	t.Run("Rejects moves after the round is over", func(t *testing.T) {
		// Given: a finished round
		game := newTestGame(3)
		game.Status = StatusRoundOver

		// When: anyone tries to move
		err := game.MakeTurn(HumanMark, 0)

		// Then: the move is rejected
		assert.ErrorIs(t, err, apperror.ErrRoundOver)
	})

	t.Run("Rejects moves after the game is over", func(t *testing.T) {
		// Given: a finished game
		game := newTestGame(3)
		game.Status = StatusGameOver

		// When: anyone tries to move
		err := game.MakeTurn(HumanMark, 0)

		// Then: the move is rejected
		assert.ErrorIs(t, err, apperror.ErrGameOver)
	})
}

func TestGame_AdvanceRound(t *testing.T) {
	t.Run("Starts the next round with a clean board and the first mover", func(t *testing.T) {
		// Given: a finished round won by the human, bot moved last
		game := newTestGame(3)
		game.Board = Board{HumanMark, HumanMark, HumanMark, BotMark, BotMark, "", "", "", ""}
		game.Status = StatusRoundOver
		game.RoundWinner = HumanMark
		game.Players[0].Score = 1

		// When: advancing the round
		err := game.AdvanceRound()

		// Then: the board is clear, the first mover is on turn, scores survive
		require.NoError(t, err)
		assert.Equal(t, StatusOngoing, game.Status)
		assert.Equal(t, 2, game.Round)
		assert.Equal(t, Board{}, game.Board)
		assert.Equal(t, HumanMark, game.Turn)
		assert.Equal(t, "", game.RoundWinner)
		assert.Equal(t, 1, game.Players[0].Score)
	})

	t.Run("Ends the game when a score reaches the win target", func(t *testing.T) {
		// Given: a finished round that brought the bot to the target
		game := newTestGame(2)
		game.Status = StatusRoundOver
		game.RoundWinner = BotMark
		game.Players[1].Score = 2

		// When: advancing the round
		err := game.AdvanceRound()

		// Then: the game is over in favor of the bot
		require.NoError(t, err)
		assert.Equal(t, StatusGameOver, game.Status)
		assert.Equal(t, BotMark, game.Winner)
	})

	t.Run("Ends the game regardless of the round count", func(t *testing.T) {
		// Given: a long match where the human finally reaches the target
		game := newTestGame(3)
		game.Round = 7
		game.Status = StatusRoundOver
		game.Players[0].Score = 3

		// When: advancing the round
		err := game.AdvanceRound()

		// Then: the game is over in favor of the human
		require.NoError(t, err)
		assert.Equal(t, StatusGameOver, game.Status)
		assert.Equal(t, HumanMark, game.Winner)
	})

	t.Run("Rejects advancing an ongoing round", func(t *testing.T) {
		// Given: an ongoing round
		game := newTestGame(3)

		// When: advancing it
		err := game.AdvanceRound()

		// Then: it should fail
		assert.ErrorIs(t, err, apperror.ErrRoundNotOver)
	})
}

func TestGame_Reset(t *testing.T) {
	t.Run("Clears scores, round counter and board", func(t *testing.T) {
		// Given: a finished game with accumulated scores
		game := newTestGame(2)
		game.Board = Board{HumanMark, HumanMark, HumanMark, "", "", "", "", "", ""}
		game.Round = 5
		game.Status = StatusGameOver
		game.Winner = HumanMark
		game.Players[0].Score = 2
		game.Players[1].Score = 1

		// When: resetting the game
		game.Reset()

		// Then: everything is back to the initial state
		assert.Equal(t, StatusOngoing, game.Status)
		assert.Equal(t, 1, game.Round)
		assert.Equal(t, Board{}, game.Board)
		assert.Equal(t, HumanMark, game.Turn)
		assert.Equal(t, "", game.Winner)

		for _, player := range game.Players {
			assert.Zero(t, player.Score)
		}
	})
}

func TestGame_PlayerByMark(t *testing.T) {
	t.Run("Resolves marks and opponents", func(t *testing.T) {
		// Given: a fresh game
		game := newTestGame(3)

		// When: resolving both marks
		human, err := game.PlayerByMark(HumanMark)
		require.NoError(t, err)
		opponent, err := game.Opponent(HumanMark)
		require.NoError(t, err)

		// Then: the human and the bot come back
		assert.Equal(t, "Alice", human.Name)
		assert.Equal(t, "Hal", opponent.Name)
	})

	t.Run("Returns ErrPlayerNotFound for an unknown mark", func(t *testing.T) {
		// Given: a fresh game
		game := newTestGame(3)

		// When: resolving a mark nobody plays
		_, err := game.PlayerByMark("Z")

		// Then: it should fail
		assert.ErrorIs(t, err, apperror.ErrPlayerNotFound)
	})
}
