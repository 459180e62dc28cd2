package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, id string, game *tictactoe.GameController) error
	GetByID(ctx context.Context, id string) (*tictactoe.GameController, error)
	DeleteByID(ctx context.Context, id string) error
}

// Session is one play-through, from start to the next reset.
type Session struct {
	ID   string
	Game *tictactoe.GameController
}

// GameManager owns the single live session. It is not safe for concurrent use.
type GameManager struct {
	logger    *slog.Logger
	gameRepo  gameRepo
	sessionID string
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		gameRepo: gameRepo,
	}
}

// StartGame - discards the current session, if any, and starts a fresh one.
func (that *GameManager) StartGame(ctx context.Context, playerOne, playerTwo string, dimension int) (*Session, error) {
	log := that.logger.With("method", "StartGame")

	game, err := tictactoe.NewGameController(playerOne, playerTwo, dimension)
	if err != nil {
		return nil, fmt.Errorf("failed create game: %w", err)
	}

	if that.sessionID != "" {
		that.deleteGame(ctx)
	}

	sessionID := pkg.GenerateSessionID()
	if err = that.gameRepo.CreateOrUpdate(ctx, sessionID, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.sessionID = sessionID

	players := game.Players()
	log.Info("game started",
		"session", sessionID,
		"player_one", players[0].Name,
		"player_two", players[1].Name,
		"dimension", dimension,
	)

	return &Session{ID: sessionID, Game: game}, nil
}

// MakeTurn - plays a move for the active player of the current session.
func (that *GameManager) MakeTurn(ctx context.Context, row, column int) (*Session, tictactoe.Result, error) {
	log := that.logger.With("method", "MakeTurn", "row", row, "column", column)

	session, err := that.CurrentGame(ctx)
	if err != nil {
		return nil, tictactoe.Result{}, err
	}

	log = log.With("session", session.ID, "player", session.Game.ActivePlayer().Name)

	result, err := session.Game.PlayMove(row, column)
	if err != nil {
		log.Warn("move rejected", "error", err)
		return session, result, fmt.Errorf("failed make turn: %w", err)
	}

	if err = that.updateGame(ctx, session); err != nil {
		return nil, result, fmt.Errorf("failed update game: %w", err)
	}

	if !result.InProgress() {
		attrs := []any{"status", result.Status.String()}
		if result.Winner != nil {
			attrs = append(attrs, "winner", result.Winner.Name)
		}
		log.Info("game finished", attrs...)

		return session, result, nil
	}

	log.Debug("move played")

	return session, result, nil
}

// CurrentGame - returns the live session or ErrNoActiveGame.
func (that *GameManager) CurrentGame(ctx context.Context) (*Session, error) {
	if that.sessionID == "" {
		return nil, apperror.ErrNoActiveGame
	}

	game, err := that.gameRepo.GetByID(ctx, that.sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return &Session{ID: that.sessionID, Game: game}, nil
}

// EndGame - drops the current session.
func (that *GameManager) EndGame(ctx context.Context) error {
	if that.sessionID == "" {
		return apperror.ErrNoActiveGame
	}

	that.deleteGame(ctx)

	return nil
}

func (that *GameManager) updateGame(ctx context.Context, session *Session) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, session.ID, session.Game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}

func (that *GameManager) deleteGame(ctx context.Context) {
	log := that.logger.With("method", "deleteGame", "session", that.sessionID)

	err := that.gameRepo.DeleteByID(ctx, that.sessionID)
	that.sessionID = ""

	if err != nil {
		log.Error("failed to delete game", "error", err)
		return
	}

	log.Info("game deleted")
}
