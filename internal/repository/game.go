package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

var ErrGameNotFound = errors.New("game not found")

type GameRepository interface {
	CreateOrUpdate(ctx context.Context, id string, game *tictactoe.GameController) error
	GetByID(ctx context.Context, id string) (*tictactoe.GameController, error)
	DeleteByID(ctx context.Context, id string) error
}

// memGame keeps games for the lifetime of the process only.
type memGame struct {
	games map[string]*tictactoe.GameController
}

func NewGameRepository() GameRepository {
	return &memGame{
		games: make(map[string]*tictactoe.GameController),
	}
}

func (that *memGame) CreateOrUpdate(ctx context.Context, id string, game *tictactoe.GameController) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to set game: %w", err)
	}

	that.games[gameKey(id)] = game

	return nil
}

func (that *memGame) GetByID(ctx context.Context, id string) (*tictactoe.GameController, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	game, ok := that.games[gameKey(id)]
	if !ok {
		return nil, ErrGameNotFound
	}

	return game, nil
}

func (that *memGame) DeleteByID(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	key := gameKey(id)
	if _, ok := that.games[key]; !ok {
		return ErrGameNotFound
	}

	delete(that.games, key)

	return nil
}

func gameKey(id string) string {
	return "game:" + id
}
