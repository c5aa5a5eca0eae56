package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-threemark/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-threemark/internal/entity"
	mockedUseCase "github.com/rocketscienceinc/tictactoe-threemark/mocks/usecase"
)

var (
	errRedisDown     = errors.New("redis down")
	errStorageIsFull = errors.New("storage is full")
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGameUseCase_CreateGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores a fresh game", func(t *testing.T) {
		// Given: a repository that accepts writes
		mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
		useCaseInstance := NewGameUseCase(discardLogger(), mockGameRepo)

		mockGameRepo.EXPECT().
			CreateOrUpdate(mock.Anything, mock.MatchedBy(func(game *entity.Game) bool {
				return game.ID != "" && game.CurrentPlayer == entity.PlayerX && game.MoveCount == 0
			})).
			Return(nil).
			Once()

		// When: a game is created
		game, err := useCaseInstance.CreateGame(ctx)

		// Then: the new game is returned
		require.NoError(t, err)
		assert.NotEmpty(t, game.ID)
		assert.False(t, game.GameOver)
	})

	t.Run("Returns error if the repository fails", func(t *testing.T) {
		// Given: a repository that fails on write
		mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
		useCaseInstance := NewGameUseCase(discardLogger(), mockGameRepo)

		mockGameRepo.EXPECT().
			CreateOrUpdate(mock.Anything, mock.AnythingOfType("*entity.Game")).
			Return(errStorageIsFull).
			Once()

		// When: a game is created
		game, err := useCaseInstance.CreateGame(ctx)

		// Then: the error is wrapped and no game comes back
		require.ErrorIs(t, err, errStorageIsFull)
		assert.Nil(t, game)
	})
}

func TestGameUseCase_GetGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns the stored game", func(t *testing.T) {
		// Given: a stored game
		mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
		useCaseInstance := NewGameUseCase(discardLogger(), mockGameRepo)

		existingGame := entity.NewGame("g1")
		mockGameRepo.EXPECT().GetByID(ctx, "g1").Return(existingGame, nil).Once()

		// When: the game is requested
		game, err := useCaseInstance.GetGame(ctx, "g1")

		// Then: it is returned as is
		require.NoError(t, err)
		assert.Equal(t, existingGame, game)
	})

	t.Run("Unknown game keeps ErrGameNotFound", func(t *testing.T) {
		// Given: an empty repository
		mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
		useCaseInstance := NewGameUseCase(discardLogger(), mockGameRepo)

		mockGameRepo.EXPECT().GetByID(ctx, "nope").Return((*entity.Game)(nil), apperror.ErrGameNotFound).Once()

		// When: the game is requested
		game, err := useCaseInstance.GetGame(ctx, "nope")

		// Then: the sentinel survives wrapping
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
		assert.Nil(t, game)
	})
}

func TestGameUseCase_PlaceMarker(t *testing.T) {
	ctx := context.Background()

	t.Run("Accepted placement is stored", func(t *testing.T) {
		// Given: a fresh game
		mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
		useCaseInstance := NewGameUseCase(discardLogger(), mockGameRepo)

		mockGameRepo.EXPECT().GetByID(ctx, "g1").Return(entity.NewGame("g1"), nil).Once()
		mockGameRepo.EXPECT().
			CreateOrUpdate(ctx, mock.MatchedBy(func(game *entity.Game) bool {
				return game.Board[4].Value == entity.PlayerX && game.MoveCount == 1
			})).
			Return(nil).
			Once()

		// When: X places on the centre
		game, err := useCaseInstance.PlaceMarker(ctx, "g1", 4)

		// Then: the updated game is returned
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerO, game.CurrentPlayer)
		assert.Equal(t, []int{4}, game.XMoves)
	})

	t.Run("Ignored placement is not stored", func(t *testing.T) {
		// Given: a game where cell 4 is taken
		mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
		useCaseInstance := NewGameUseCase(discardLogger(), mockGameRepo)

		existingGame := entity.NewGame("g1")
		existingGame.PlaceMarker(4)
		before := existingGame.Clone()

		mockGameRepo.EXPECT().GetByID(ctx, "g1").Return(existingGame, nil).Once()

		// When: O clicks the same cell
		game, err := useCaseInstance.PlaceMarker(ctx, "g1", 4)

		// Then: no error, no write, unchanged state
		require.NoError(t, err)
		assert.Equal(t, before, game)
	})

	t.Run("Out of range cell is rejected before loading", func(t *testing.T) {
		// Given: a repository that must not be touched
		mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
		useCaseInstance := NewGameUseCase(discardLogger(), mockGameRepo)

		// When: an invalid cell is used
		game, err := useCaseInstance.PlaceMarker(ctx, "g1", 9)

		// Then: ErrInvalidCell is returned
		require.ErrorIs(t, err, apperror.ErrInvalidCell)
		assert.Nil(t, game)
	})

	t.Run("Returns error if the save fails", func(t *testing.T) {
		// Given: a repository that fails on write
		mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
		useCaseInstance := NewGameUseCase(discardLogger(), mockGameRepo)

		mockGameRepo.EXPECT().GetByID(ctx, "g1").Return(entity.NewGame("g1"), nil).Once()
		mockGameRepo.EXPECT().CreateOrUpdate(ctx, mock.AnythingOfType("*entity.Game")).Return(errRedisDown).Once()

		// When: X places a marker
		game, err := useCaseInstance.PlaceMarker(ctx, "g1", 0)

		// Then: the error comes back
		require.ErrorIs(t, err, errRedisDown)
		assert.Nil(t, game)
	})
}

func TestGameUseCase_SetPlayerNames(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid names are trimmed and stored", func(t *testing.T) {
		// Given: a fresh game
		mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
		useCaseInstance := NewGameUseCase(discardLogger(), mockGameRepo)

		mockGameRepo.EXPECT().GetByID(ctx, "g1").Return(entity.NewGame("g1"), nil).Once()
		mockGameRepo.EXPECT().
			CreateOrUpdate(ctx, mock.MatchedBy(func(game *entity.Game) bool {
				return game.Player1Name == "Alice" && game.Player2Name == "Bob"
			})).
			Return(nil).
			Once()

		// When: names with padding are set
		game, err := useCaseInstance.SetPlayerNames(ctx, "g1", " Alice ", "Bob ")

		// Then: the trimmed names are stored
		require.NoError(t, err)
		assert.True(t, game.HasPlayers())
	})

	t.Run("Invalid names never reach the repository", func(t *testing.T) {
		// Given: a repository that must not be touched
		mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
		useCaseInstance := NewGameUseCase(discardLogger(), mockGameRepo)

		// When: equal names are set
		game, err := useCaseInstance.SetPlayerNames(ctx, "g1", "Alice", "Alice")

		// Then: the validation error is returned
		require.ErrorIs(t, err, apperror.ErrNamesNotDistinct)
		assert.Nil(t, game)
	})
}

func TestGameUseCase_ResetGame(t *testing.T) {
	ctx := context.Background()

	// Given: a finished game with names
	mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
	useCaseInstance := NewGameUseCase(discardLogger(), mockGameRepo)

	existingGame := entity.NewGame("g1")
	existingGame.SetPlayerNames("Alice", "Bob")
	for _, cell := range []int{0, 1, 4, 2, 8} {
		existingGame.PlaceMarker(cell)
	}
	require.True(t, existingGame.GameOver)

	mockGameRepo.EXPECT().GetByID(ctx, "g1").Return(existingGame, nil).Once()
	mockGameRepo.EXPECT().CreateOrUpdate(ctx, mock.AnythingOfType("*entity.Game")).Return(nil).Once()

	// When: the game is reset
	game, err := useCaseInstance.ResetGame(ctx, "g1")

	// Then: only the names survive
	require.NoError(t, err)

	expectedGame := entity.NewGame("g1")
	expectedGame.SetPlayerNames("Alice", "Bob")
	assert.Equal(t, expectedGame, game)
}

func TestGameUseCase_DeleteGame(t *testing.T) {
	ctx := context.Background()

	// Given: a repository with the game
	mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
	useCaseInstance := NewGameUseCase(discardLogger(), mockGameRepo)

	mockGameRepo.EXPECT().DeleteByID(ctx, "g1").Return(nil).Once()

	// When: the game is deleted
	err := useCaseInstance.DeleteGame(ctx, "g1")

	// Then: no error
	require.NoError(t, err)
}

func TestGameUseCase_ConcurrentPlacements(t *testing.T) {
	ctx := context.Background()

	// Given: a repository backed by a single stored copy
	mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
	useCaseInstance := NewGameUseCase(discardLogger(), mockGameRepo)

	var mu sync.Mutex
	stored := entity.NewGame("g1")
	saves := 0

	mockGameRepo.EXPECT().GetByID(ctx, "g1").RunAndReturn(func(context.Context, string) (*entity.Game, error) {
		mu.Lock()
		defer mu.Unlock()
		return stored.Clone(), nil
	})
	mockGameRepo.EXPECT().CreateOrUpdate(ctx, mock.AnythingOfType("*entity.Game")).RunAndReturn(func(_ context.Context, game *entity.Game) error {
		mu.Lock()
		defer mu.Unlock()
		stored = game.Clone()
		saves++
		return nil
	})

	// When: every cell is clicked at once
	var wg sync.WaitGroup
	for cell := 0; cell < entity.BoardSize; cell++ {
		cell := cell
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := useCaseInstance.PlaceMarker(ctx, "g1", cell)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// Then: every stored write advanced the move counter by exactly one
	assert.Equal(t, saves, stored.MoveCount)

	occupied := 0
	for _, cell := range stored.Board {
		if !cell.IsEmpty() {
			occupied++
		}
	}
	assert.Equal(t, len(stored.XMoves)+len(stored.OMoves), occupied)
	assert.Zero(t, useCaseInstance.(*gameUseCase).locks.size())
}
