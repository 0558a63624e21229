package terminal

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/service"
)

const defaultHumanName = "Player"

// Runner drives one interactive session: game setup, the round loop, and
// the play-again prompt. Rules live in the services; the runner only moves
// input and output across the boundary.
type Runner struct {
	logger *slog.Logger

	prompter *Prompter
	renderer *Renderer
	gamePlay service.GamePlayService
	rng      *rand.Rand

	winTarget  int
	firstMover string
	botNames   []string
}

func NewRunner(logger *slog.Logger, prompter *Prompter, renderer *Renderer, gamePlay service.GamePlayService, rng *rand.Rand, conf *config.Config) *Runner {
	return &Runner{
		logger: logger.With("component", "terminal"),

		prompter: prompter,
		renderer: renderer,
		gamePlay: gamePlay,
		rng:      rng,

		winTarget:  conf.WinTarget,
		firstMover: conf.FirstMover,
		botNames:   conf.BotNames,
	}
}

// Run - plays games until the player declines another one or the input
// stream closes.
func (that *Runner) Run(ctx context.Context) error {
	game, err := that.setupGame()
	if err != nil {
		return fmt.Errorf("failed to set up game: %w", err)
	}

	for {
		if err = ctx.Err(); err != nil {
			return fmt.Errorf("session interrupted: %w", err)
		}

		if err = that.playGame(ctx, game); err != nil {
			return fmt.Errorf("failed to play game: %w", err)
		}

		again, err := that.prompter.AskYesNo("Play again? (y/n): ")
		if err != nil {
			return fmt.Errorf("failed to read play-again answer: %w", err)
		}

		if !again {
			that.renderer.Println("Thanks for playing!")
			that.logger.Debug("session finished", "game", game.ID)

			return nil
		}

		firstMover, err := that.chooseFirstMover(game.Players[0], game.Players[1])
		if err != nil {
			return fmt.Errorf("failed to choose first mover: %w", err)
		}

		game.FirstMover = firstMover
		that.gamePlay.RestartGame(game)
	}
}

// setupGame - collects the player's name, mark and the first-mover choice,
// then builds a fresh game against a randomly named bot.
func (that *Runner) setupGame() (*entity.Game, error) {
	that.renderer.Println("Welcome to tic-tac-toe!")

	name, err := that.prompter.AskName(fmt.Sprintf("Your name (default %s): ", defaultHumanName), defaultHumanName)
	if err != nil {
		return nil, fmt.Errorf("failed to read name: %w", err)
	}

	mark, err := that.prompter.AskMark(fmt.Sprintf("Your mark (default %s): ", entity.HumanMark), entity.HumanMark, entity.BotMark)
	if err != nil {
		return nil, fmt.Errorf("failed to read mark: %w", err)
	}

	human := entity.NewHumanPlayer(name, mark)
	bot := entity.NewBotPlayer(that.botNames[that.rng.Intn(len(that.botNames))], entity.BotMark)

	that.renderer.Printf("You are playing against %s (%s).\n", bot.Name, bot.Mark)

	firstMover, err := that.chooseFirstMover(human, bot)
	if err != nil {
		return nil, fmt.Errorf("failed to choose first mover: %w", err)
	}

	game := entity.NewGame(uuid.NewString(), human, bot, firstMover, that.winTarget)

	that.logger.Debug("game started", "game", game.ID, "human", human.Name, "bot", bot.Name, "first_mover", firstMover)

	return game, nil
}

// chooseFirstMover - resolves the configured first-mover policy, asking the
// player when the policy is "ask".
func (that *Runner) chooseFirstMover(human, bot *entity.Player) (string, error) {
	switch that.firstMover {
	case config.FirstMoverHuman:
		return human.Mark, nil
	case config.FirstMoverBot:
		return bot.Mark, nil
	case config.FirstMoverRandom:
		return that.randomMark(human, bot), nil
	}

	prompt := fmt.Sprintf("Who goes first?\n  1) %s\n  2) %s\n  3) Random\n> ", human.Name, bot.Name)

	choice, err := that.prompter.AskChoice(prompt, 3)
	if err != nil {
		return "", err
	}

	switch choice {
	case 1:
		return human.Mark, nil
	case 2:
		return bot.Mark, nil
	default:
		return that.randomMark(human, bot), nil
	}
}

func (that *Runner) randomMark(human, bot *entity.Player) string {
	if that.rng.Intn(2) == 0 {
		return human.Mark
	}

	return bot.Mark
}

// playGame - runs rounds until a player reaches the win target.
func (that *Runner) playGame(ctx context.Context, game *entity.Game) error {
	for !game.IsGameOver() {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("game interrupted: %w", err)
		}

		if err := that.playRound(game); err != nil {
			return err
		}

		that.renderer.RenderRoundResult(game)

		if err := that.gamePlay.AdvanceRound(game); err != nil {
			return err
		}
	}

	that.renderer.RenderGameResult(game)

	return nil
}

// playRound - alternates turns until the round is over.
func (that *Runner) playRound(game *entity.Game) error {
	that.renderer.RenderScoreboard(game)
	that.renderer.RenderBoard(game)

	for game.IsOngoing() {
		mover, err := game.PlayerByMark(game.Turn)
		if err != nil {
			return fmt.Errorf("failed to resolve mover: %w", err)
		}

		if mover.IsBot() {
			if err = that.gamePlay.MakeBotTurn(game); err != nil {
				return err
			}

			that.renderer.Printf("%s played.\n", mover.Name)
		} else {
			prompt := fmt.Sprintf("%s, pick a square: ", mover.Name)

			cell, err := that.prompter.AskCell(prompt, game.Board.UnmarkedCells())
			if err != nil {
				return fmt.Errorf("failed to read square: %w", err)
			}

			if err = that.gamePlay.MakeHumanTurn(game, cell); err != nil {
				return err
			}
		}

		that.renderer.RenderBoard(game)
	}

	return nil
}
