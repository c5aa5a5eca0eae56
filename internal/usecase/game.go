package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/tictactoe-threemark/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-threemark/internal/entity"
	"github.com/rocketscienceinc/tictactoe-threemark/internal/pkg"
)

type GameUseCase interface {
	CreateGame(ctx context.Context) (*entity.Game, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)
	DeleteGame(ctx context.Context, gameID string) error

	SetPlayerNames(ctx context.Context, gameID, player1, player2 string) (*entity.Game, error)
	PlaceMarker(ctx context.Context, gameID string, cell int) (*entity.Game, error)
	ResetGame(ctx context.Context, gameID string) (*entity.Game, error)
}

type gameRepoDep interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type gameUseCase struct {
	logger   *slog.Logger
	gameRepo gameRepoDep

	locks *sessionLocks
}

// NewGameUseCase - every change to a game runs load, apply, save under that game's lock,
// so a session never sees two writers at once.
func NewGameUseCase(logger *slog.Logger, gameRepo gameRepoDep) GameUseCase {
	return &gameUseCase{
		logger:   logger.With("component", "game_usecase"),
		gameRepo: gameRepo,
		locks:    newSessionLocks(),
	}
}

func (that *gameUseCase) CreateGame(ctx context.Context) (*entity.Game, error) {
	gameID, err := pkg.GenerateGameID()
	if err != nil {
		return nil, fmt.Errorf("error generating game ID: %w", err)
	}

	game := entity.NewGame(gameID)
	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game created", "gameID", gameID)

	return game, nil
}

func (that *gameUseCase) GetGame(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

func (that *gameUseCase) DeleteGame(ctx context.Context, gameID string) error {
	unlock := that.locks.lock(gameID)
	defer unlock()

	if err := that.gameRepo.DeleteByID(ctx, gameID); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	return nil
}

func (that *gameUseCase) SetPlayerNames(ctx context.Context, gameID, player1, player2 string) (*entity.Game, error) {
	player1, player2, err := ValidatePlayerNames(player1, player2)
	if err != nil {
		return nil, err
	}

	return that.update(ctx, gameID, func(game *entity.Game) bool {
		game.SetPlayerNames(player1, player2)
		return true
	})
}

// PlaceMarker - applies a placement. Placements the engine ignores are not errors: the unchanged game comes back.
func (that *gameUseCase) PlaceMarker(ctx context.Context, gameID string, cell int) (*entity.Game, error) {
	if cell < 0 || cell >= entity.BoardSize {
		return nil, fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	log := that.logger.With("method", "PlaceMarker", "gameID", gameID, "cell", cell)

	return that.update(ctx, gameID, func(game *entity.Game) bool {
		moveCount := game.MoveCount
		game.PlaceMarker(cell)

		if game.MoveCount == moveCount {
			log.Debug("placement ignored", "gameOver", game.GameOver)
			return false
		}

		if game.GameOver {
			log.Info("game finished", "winner", game.Winner, "moves", game.MoveCount)
		}

		return true
	})
}

func (that *gameUseCase) ResetGame(ctx context.Context, gameID string) (*entity.Game, error) {
	return that.update(ctx, gameID, func(game *entity.Game) bool {
		game.Reset()
		return true
	})
}

// update - loads the game, applies the change and stores it when apply reports a change.
func (that *gameUseCase) update(ctx context.Context, gameID string, apply func(game *entity.Game) bool) (*entity.Game, error) {
	unlock := that.locks.lock(gameID)
	defer unlock()

	game, err := that.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	if !apply(game) {
		return game, nil
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

type sessionLock struct {
	sync.Mutex
	refs int
}

type sessionLocks struct {
	mu    sync.Mutex
	locks map[string]*sessionLock
}

func newSessionLocks() *sessionLocks {
	return &sessionLocks{
		locks: make(map[string]*sessionLock),
	}
}

// lock - blocks until the game's lock is held. Entries are dropped once nobody waits on them.
func (that *sessionLocks) lock(gameID string) func() {
	that.mu.Lock()
	entry, ok := that.locks[gameID]
	if !ok {
		entry = &sessionLock{}
		that.locks[gameID] = entry
	}
	entry.refs++
	that.mu.Unlock()

	entry.Lock()

	return func() {
		entry.Unlock()

		that.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(that.locks, gameID)
		}
		that.mu.Unlock()
	}
}

func (that *sessionLocks) size() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.locks)
}
