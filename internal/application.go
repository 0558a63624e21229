package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/service"
	"github.com/rocketscienceinc/tictactoe-cli/internal/terminal"
)

var (
	ErrNoBotNames       = errors.New("bot name list is empty")
	ErrInvalidWinTarget = errors.New("win target must be at least 1")
)

// RunApp - wires the services and runs the interactive session.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	if conf.WinTarget < 1 {
		return ErrInvalidWinTarget
	}

	if len(conf.BotNames) == 0 {
		return ErrNoBotNames
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	rng := rand.New(rand.NewSource(time.Now().UnixNano())) //nolint: gosec // game moves need no crypto rand

	botService := service.NewBotService(rng)
	gamePlayService := service.NewGamePlayService(logger, botService)

	prompter := terminal.NewPrompter(os.Stdin, os.Stdout)
	renderer := terminal.NewRenderer(os.Stdout, conf.Colors)
	runner := terminal.NewRunner(logger, prompter, renderer, gamePlayService, rng, conf)

	if err := runner.Run(ctx); err != nil {
		if errors.Is(err, apperror.ErrInputClosed) || errors.Is(err, context.Canceled) {
			log.Info("Session closed")
			return nil
		}

		return fmt.Errorf("session failed: %w", err)
	}

	return nil
}
