package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type Status int

const (
	StatusInProgress Status = iota
	StatusWon
	StatusTied
)

func (that Status) String() string {
	switch that {
	case StatusWon:
		return "won"
	case StatusTied:
		return "tied"
	default:
		return "in_progress"
	}
}

// Result is the outcome of one move. Winner is set only when Status is StatusWon.
type Result struct {
	Status Status
	Winner *entity.Player
}

func (that Result) InProgress() bool {
	return that.Status == StatusInProgress
}

// GameController controls the flow of one game: turns, moves and the final result.
type GameController struct {
	board   *entity.Board
	players [2]entity.Player
	active  int
	winner  int
	status  Status
}

const noWinner = -1

func NewGameController(playerOneName, playerTwoName string, dimension int) (*GameController, error) {
	board, err := entity.NewBoard(dimension)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	return &GameController{
		board:   board,
		players: entity.NewPlayers(playerOneName, playerTwoName),
		active:  0,
		winner:  noWinner,
		status:  StatusInProgress,
	}, nil
}

// PlayMove - the active player puts a token at (row, column).
// A rejected move leaves the board and the turn unchanged.
func (that *GameController) PlayMove(row, column int) (Result, error) {
	if that.IsFinished() {
		return that.result(), apperror.ErrGameFinished
	}

	mover := that.players[that.active]

	if err := that.board.Place(row, column, mover.Token); err != nil {
		return that.result(), fmt.Errorf("invalid move: %w", err)
	}

	that.updateGameStatus(mover.Token)

	return that.result(), nil
}

// updateGameStatus - checks the game status after a move.
func (that *GameController) updateGameStatus(token entity.Token) {
	switch {
	case checkWinner(that.board.Snapshot(), token):
		that.winner = that.active
		that.status = StatusWon
	case that.board.IsFull():
		that.status = StatusTied
	default:
		that.switchPlayerTurn()
	}
}

func (that *GameController) switchPlayerTurn() {
	that.active = 1 - that.active
}

func (that *GameController) result() Result {
	res := Result{Status: that.status}
	if winner, ok := that.Winner(); ok {
		res.Winner = &winner
	}

	return res
}

// ActivePlayer - returns whose turn it is, or the last mover once the game is over.
func (that *GameController) ActivePlayer() entity.Player {
	return that.players[that.active]
}

func (that *GameController) Winner() (entity.Player, bool) {
	if that.winner == noWinner {
		return entity.Player{}, false
	}

	return that.players[that.winner], true
}

func (that *GameController) Status() Status {
	return that.status
}

func (that *GameController) IsFinished() bool {
	return that.status != StatusInProgress
}

func (that *GameController) Players() [2]entity.Player {
	return that.players
}

func (that *GameController) Dimension() int {
	return that.board.Dimension()
}

func (that *GameController) Snapshot() [][]entity.Token {
	return that.board.Snapshot()
}

// checkWinner - reports whether token fills a whole row, column or diagonal.
func checkWinner(board [][]entity.Token, token entity.Token) bool {
	size := len(board)
	if size == 0 {
		return false
	}

	for i := 0; i < size; i++ {
		if lineOf(board, token, func(j int) (int, int) { return i, j }) {
			return true
		}

		if lineOf(board, token, func(j int) (int, int) { return j, i }) {
			return true
		}
	}

	if lineOf(board, token, func(j int) (int, int) { return j, j }) {
		return true
	}

	return lineOf(board, token, func(j int) (int, int) { return j, size - 1 - j })
}

// lineOf walks size cells picked by at and reports whether all of them hold token.
func lineOf(board [][]entity.Token, token entity.Token, at func(j int) (int, int)) bool {
	for j := range board {
		row, column := at(j)
		if board[row][column] != token {
			return false
		}
	}

	return true
}
