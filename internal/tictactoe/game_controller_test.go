package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	e = entity.TokenEmpty
	a = entity.TokenPlayerOne
	b = entity.TokenPlayerTwo
)

func newGame(t *testing.T, dimension int) *GameController {
	t.Helper()

	game, err := NewGameController("alice", "bob", dimension)
	require.NoError(t, err)

	return game
}

// playMoves applies the moves in order and returns the last result.
func playMoves(t *testing.T, game *GameController, moves [][2]int) Result {
	t.Helper()

	var res Result
	for i, move := range moves {
		var err error
		res, err = game.PlayMove(move[0], move[1])
		require.NoError(t, err, "move %d (%v)", i, move)
	}

	return res
}

func TestNewGameController(t *testing.T) {
	t.Run("Starts in progress with player one", func(t *testing.T) {
		// When: create a new game
		game := newGame(t, 3)

		// Then: the game state should correspond to the expected initial state
		assert.Equal(t, StatusInProgress, game.Status())
		assert.Equal(t, entity.Player{Name: "alice", Token: a}, game.ActivePlayer())
		_, ok := game.Winner()
		assert.False(t, ok)
		assert.Equal(t, 3, game.Dimension())
		assert.Equal(t, [][]entity.Token{{e, e, e}, {e, e, e}, {e, e, e}}, game.Snapshot())
	})

	t.Run("Rejects invalid dimension", func(t *testing.T) {
		// When: create a game with a negative dimension
		game, err := NewGameController("alice", "bob", -1)

		// Then: ErrInvalidDimension is returned
		require.ErrorIs(t, err, apperror.ErrInvalidDimension)
		assert.Nil(t, game)
	})
}

func TestGameController_PlayMove(t *testing.T) {
	t.Run("Switches turn after a non-terminal move", func(t *testing.T) {
		// Given: a new game
		game := newGame(t, 3)
		mover := game.ActivePlayer()

		// When: player one makes a move
		res, err := game.PlayMove(0, 0)
		require.NoError(t, err)

		// Then: the game continues and player two is active
		assert.True(t, res.InProgress())
		assert.Nil(t, res.Winner)
		assert.NotEqual(t, mover, game.ActivePlayer())
		assert.Equal(t, "bob", game.ActivePlayer().Name)
		assert.Equal(t, [][]entity.Token{{a, e, e}, {e, e, e}, {e, e, e}}, game.Snapshot())
	})

	t.Run("Player one wins with the top row", func(t *testing.T) {
		// Given: a new game
		game := newGame(t, 3)

		// When: A takes row 0 while B plays elsewhere
		res := playMoves(t, game, [][2]int{{0, 0}, {1, 1}, {0, 1}, {1, 0}, {0, 2}})

		// Then: A is the winner and stays the active player
		assert.False(t, res.InProgress())
		assert.Equal(t, StatusWon, res.Status)
		require.NotNil(t, res.Winner)
		assert.Equal(t, "alice", res.Winner.Name)
		assert.Equal(t, "alice", game.ActivePlayer().Name)

		winner, ok := game.Winner()
		require.True(t, ok)
		assert.Equal(t, a, winner.Token)

		// When: another move is submitted
		before := game.Snapshot()
		_, err := game.PlayMove(2, 2)

		// Then: it is rejected and nothing changes
		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.Equal(t, before, game.Snapshot())
		assert.Equal(t, "alice", game.ActivePlayer().Name)
	})

	t.Run("Full board without a line is a tie", func(t *testing.T) {
		// Given: a new game
		game := newGame(t, 3)

		// When: the board fills up as
		//   A B A
		//   A B B
		//   B A A
		res := playMoves(t, game, [][2]int{
			{0, 0}, {0, 1}, {0, 2}, {1, 1}, {1, 0}, {1, 2}, {2, 1}, {2, 0}, {2, 2},
		})

		// Then: the game is tied and nobody won
		assert.Equal(t, StatusTied, res.Status)
		assert.Nil(t, res.Winner)
		_, ok := game.Winner()
		assert.False(t, ok)
		assert.Equal(t, "alice", game.ActivePlayer().Name)

		// Then: further moves are rejected
		_, err := game.PlayMove(0, 0)
		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Win on the last free cell beats tie", func(t *testing.T) {
		// Given: a new game
		game := newGame(t, 3)

		// When: A fills the anti-diagonal with the ninth move
		//   B A A
		//   A A B
		//   A B B
		res := playMoves(t, game, [][2]int{
			{0, 1}, {0, 0}, {1, 0}, {1, 2}, {0, 2}, {2, 1}, {1, 1}, {2, 2}, {2, 0},
		})

		// Then: the result is a win, not a tie
		assert.Equal(t, StatusWon, res.Status)
		require.NotNil(t, res.Winner)
		assert.Equal(t, a, res.Winner.Token)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: player one took the centre
		game := newGame(t, 3)
		playMoves(t, game, [][2]int{{1, 1}})
		before := game.Snapshot()

		// When: player two tries the same cell
		res, err := game.PlayMove(1, 1)

		// Then: ErrCellOccupied is returned, board and turn unchanged
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.True(t, res.InProgress())
		assert.Equal(t, before, game.Snapshot())
		assert.Equal(t, "bob", game.ActivePlayer().Name)
	})

	t.Run("Error on out of bounds", func(t *testing.T) {
		// Given: a new game
		game := newGame(t, 3)
		before := game.Snapshot()

		// When: row equals the dimension
		_, err := game.PlayMove(3, 0)

		// Then: ErrOutOfBounds is returned, board and turn unchanged
		require.ErrorIs(t, err, apperror.ErrOutOfBounds)
		assert.Equal(t, before, game.Snapshot())
		assert.Equal(t, "alice", game.ActivePlayer().Name)
	})

	t.Run("Single cell board is won by the first move", func(t *testing.T) {
		game := newGame(t, 1)

		res, err := game.PlayMove(0, 0)

		require.NoError(t, err)
		assert.Equal(t, StatusWon, res.Status)
	})

	t.Run("Player two wins a column on a 4x4 board", func(t *testing.T) {
		// Given: a 4x4 game
		game := newGame(t, 4)

		// When: B fills column 3 while A scatters
		res := playMoves(t, game, [][2]int{
			{0, 0}, {0, 3}, {1, 1}, {1, 3}, {2, 0}, {2, 3}, {3, 1}, {3, 3},
		})

		// Then: B wins
		assert.Equal(t, StatusWon, res.Status)
		require.NotNil(t, res.Winner)
		assert.Equal(t, "bob", res.Winner.Name)
	})
}

func TestGame_checkWinner(t *testing.T) {
	t.Run("Any full line wins", func(t *testing.T) {
		boards := map[string][][]entity.Token{
			"row":           {{e, e, e}, {a, a, a}, {e, e, e}},
			"column":        {{e, a, e}, {e, a, e}, {e, a, e}},
			"main diagonal": {{a, e, e}, {e, a, e}, {e, e, a}},
			"anti-diagonal": {{e, e, a}, {e, a, e}, {a, e, e}},
		}

		for name, board := range boards {
			// When: check the board for player one
			won := checkWinner(board, a)

			// Then: player one should be declared the winner, player two not
			assert.True(t, won, name)
			assert.False(t, checkWinner(board, b), name)
		}
	})

	t.Run("Mixed lines never win", func(t *testing.T) {
		// Given: every line holds both tokens
		board := [][]entity.Token{
			{a, b, a},
			{a, b, b},
			{b, a, a},
		}

		// Then: neither token wins
		assert.False(t, checkWinner(board, a))
		assert.False(t, checkWinner(board, b))
	})

	t.Run("Empty board has no winner", func(t *testing.T) {
		board := [][]entity.Token{{e, e}, {e, e}}

		assert.False(t, checkWinner(board, a))
		assert.False(t, checkWinner(board, b))
	})
}
