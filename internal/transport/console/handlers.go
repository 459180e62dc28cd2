package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
)

const helpText = `Commands:
  start [playerOne] [playerTwo] [dimension]  start a new game, discarding the current one
  <row> <column>                             place a token, same as "move <row> <column>"
  board                                      show the board
  help                                       show this help
  quit                                       leave
`

const (
	msgNoActiveGame = "No game in progress. Type \"start\" to begin.\n"
	msgGameFinished = "Game finished! Please start a new game!\n"
	msgCellOccupied = "Cell already occupied!\n"
	msgTie          = "It's a tie!\n"

	msgDimensionRange = "Board dimension must be between 1 and %d.\n"
)

func (that *Server) handleStart(ctx context.Context, msg *Message, out io.Writer) error {
	log := that.logger.With("method", "handleStart")

	playerOne, playerTwo, dimension := that.defaultPlayerOne, that.defaultPlayerTwo, that.defaultDimension

	if len(msg.Args) > 0 {
		playerOne = msg.Args[0]
	}

	if len(msg.Args) > 1 {
		playerTwo = msg.Args[1]
	}

	if len(msg.Args) > 2 {
		parsed, err := strconv.Atoi(msg.Args[2])
		if err != nil {
			return that.send(out, "Invalid dimension %q.\n", msg.Args[2])
		}

		dimension = parsed
	}

	if dimension < 1 || dimension > that.maxDimension {
		return that.send(out, msgDimensionRange, that.maxDimension)
	}

	session, err := that.gameUseCase.StartGame(ctx, playerOne, playerTwo, dimension)
	if errors.Is(err, apperror.ErrInvalidDimension) {
		return that.send(out, msgDimensionRange, that.maxDimension)
	}

	if err != nil {
		log.Error("failed to start game", "error", err)
		return that.send(out, "Failed to start a new game.\n")
	}

	players := session.Game.Players()
	if err = that.send(out, "New game: %s (%s) vs %s (%s)\n",
		players[0].Name, that.markers.PlayerOne, players[1].Name, that.markers.PlayerTwo); err != nil {
		return err
	}

	return that.sendGameState(out, session, tictactoe.Result{Status: tictactoe.StatusInProgress})
}

func (that *Server) handleMove(ctx context.Context, msg *Message, out io.Writer) error {
	log := that.logger.With("method", "handleMove")

	if len(msg.Args) != 2 {
		return that.send(out, "Usage: <row> <column>\n")
	}

	row, rowErr := strconv.Atoi(msg.Args[0])
	column, columnErr := strconv.Atoi(msg.Args[1])
	if rowErr != nil || columnErr != nil {
		return that.send(out, "Usage: <row> <column>\n")
	}

	session, result, err := that.gameUseCase.MakeTurn(ctx, row, column)

	switch {
	case errors.Is(err, apperror.ErrNoActiveGame):
		return that.send(out, msgNoActiveGame)
	case errors.Is(err, apperror.ErrGameFinished):
		return that.send(out, msgGameFinished)
	case errors.Is(err, apperror.ErrCellOccupied):
		return that.send(out, msgCellOccupied)
	case errors.Is(err, apperror.ErrOutOfBounds):
		return that.send(out, "Position out of bounds! Use 0..%d.\n", session.Game.Dimension()-1)
	case err != nil:
		log.Error("failed to make turn", "error", err)
		return that.send(out, "Failed to make a move, try again.\n")
	}

	return that.sendGameState(out, session, result)
}

func (that *Server) handleBoard(ctx context.Context, _ *Message, out io.Writer) error {
	session, err := that.gameUseCase.CurrentGame(ctx)
	if errors.Is(err, apperror.ErrNoActiveGame) {
		return that.send(out, msgNoActiveGame)
	}

	if err != nil {
		return fmt.Errorf("failed to get current game: %w", err)
	}

	result := tictactoe.Result{Status: session.Game.Status()}
	if winner, ok := session.Game.Winner(); ok {
		result.Winner = &winner
	}

	return that.sendGameState(out, session, result)
}

func (that *Server) handleHelp(_ context.Context, _ *Message, out io.Writer) error {
	return that.send(out, "%s", helpText)
}

func (that *Server) handleQuit(ctx context.Context, _ *Message, out io.Writer) error {
	if err := that.gameUseCase.EndGame(ctx); err != nil && !errors.Is(err, apperror.ErrNoActiveGame) {
		that.logger.Error("failed to end game", "error", err)
	}

	if err := that.send(out, "Bye!\n"); err != nil {
		return err
	}

	return errQuit
}

// sendGameState - renders the board followed by the result or whose turn it is.
func (that *Server) sendGameState(out io.Writer, session *usecase.Session, result tictactoe.Result) error {
	if err := renderBoard(out, session.Game.Snapshot(), that.markers); err != nil {
		return err
	}

	switch result.Status {
	case tictactoe.StatusWon:
		return that.send(out, "%s wins!\n", result.Winner.Name)
	case tictactoe.StatusTied:
		return that.send(out, msgTie)
	default:
		active := session.Game.ActivePlayer()
		return that.send(out, "%s's turn (%s)\n", active.Name, that.markers.For(active.Token))
	}
}
