package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
)

var errQuit = errors.New("quit requested")

type gameUseCase interface {
	StartGame(ctx context.Context, playerOne, playerTwo string, dimension int) (*usecase.Session, error)
	MakeTurn(ctx context.Context, row, column int) (*usecase.Session, tictactoe.Result, error)
	CurrentGame(ctx context.Context) (*usecase.Session, error)
	EndGame(ctx context.Context) error
}

type handlerFunc func(ctx context.Context, msg *Message, out io.Writer) error

// Server is the terminal front end: it reads commands line by line and renders the game.
type Server struct {
	logger      *slog.Logger
	gameUseCase gameUseCase
	handlers    map[string]handlerFunc

	markers          Markers
	defaultPlayerOne string
	defaultPlayerTwo string
	defaultDimension int
	maxDimension     int
}

func New(logger *slog.Logger, conf *config.Config, gameUseCase gameUseCase) *Server {
	server := &Server{
		logger:      logger.With("component", "console"),
		gameUseCase: gameUseCase,
		handlers:    make(map[string]handlerFunc),

		markers: Markers{
			PlayerOne: conf.Markers.PlayerOne,
			PlayerTwo: conf.Markers.PlayerTwo,
		},
		defaultPlayerOne: conf.Game.PlayerOne,
		defaultPlayerTwo: conf.Game.PlayerTwo,
		defaultDimension: conf.Game.Dimension,
		maxDimension:     conf.Game.MaxDimension,
	}

	if server.maxDimension < 1 || server.maxDimension > entity.MaxDimension {
		server.maxDimension = entity.MaxDimension
	}

	server.handlers[actionStart] = server.handleStart
	server.handlers[actionMove] = server.handleMove
	server.handlers[actionBoard] = server.handleBoard
	server.handlers[actionHelp] = server.handleHelp
	server.handlers[actionQuit] = server.handleQuit
	server.handlers[actionExit] = server.handleQuit

	return server
}

// Start - runs the command loop until EOF, "quit" or context cancellation.
func (that *Server) Start(ctx context.Context, in io.Reader, out io.Writer) error {
	log := that.logger.With("method", "Start")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)

	go readLines(ctx, in, lines, readErr)

	if err := that.send(out, "Type %q to begin, %q for the list of commands.\n", "start", "help"); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			log.Info("context canceled, stopping console")
			return nil
		case err := <-readErr:
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}

			log.Info("input closed, stopping console")
			return nil
		case line := <-lines:
			if err := that.handleMessage(ctx, line, out); err != nil {
				if errors.Is(err, errQuit) {
					return nil
				}

				log.Error("error processing message", "error", err)
			}
		}
	}
}

func (that *Server) handleMessage(ctx context.Context, line string, out io.Writer) error {
	msg, ok := parseMessage(line)
	if !ok {
		return nil
	}

	handler, ok := that.handlers[msg.Action]
	if !ok {
		return that.send(out, "Unknown command %q. Type %q for the list of commands.\n", msg.Action, actionHelp)
	}

	return handler(ctx, msg, out)
}

// readLines feeds lines to the loop; readErr gets nil on EOF.
func readLines(ctx context.Context, in io.Reader, lines chan<- string, readErr chan<- error) {
	scanner := bufio.NewScanner(in)

	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-ctx.Done():
			return
		}
	}

	readErr <- scanner.Err()
}

func (that *Server) send(out io.Writer, format string, args ...any) error {
	if _, err := fmt.Fprintf(out, format, args...); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}
