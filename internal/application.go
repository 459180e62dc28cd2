package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository"
	"github.com/rocketscienceinc/tictactoe-console/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
)

// RunApp - runs the application on the process stdin and stdout.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	return Run(context.Background(), logger, conf, os.Stdin, os.Stdout)
}

// Run - wires the game and serves the console until input ends or a signal arrives.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	gameRepo := repository.NewGameRepository()
	gameManager := usecase.NewGameManager(logger, gameRepo)
	consoleServer := console.New(logger, conf, gameManager)

	log.Info("Starting console", "dimension", conf.Game.Dimension)

	if err := consoleServer.Start(ctx, in, out); err != nil {
		return fmt.Errorf("console error: %w", err)
	}

	log.Info("Console stopped")

	return nil
}
