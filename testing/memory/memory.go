package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/rocketscienceinc/tictactoe-threemark/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-threemark/internal/entity"
)

// GameRepository - map backed stand-in for the redis game repository. Games are copied in and out.
type GameRepository struct {
	mu    sync.Mutex
	games map[string]*entity.Game
}

func NewGameRepository() *GameRepository {
	return &GameRepository{
		games: make(map[string]*entity.Game),
	}
}

func (that *GameRepository) CreateOrUpdate(_ context.Context, game *entity.Game) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.games[game.ID] = game.Clone()
	return nil
}

func (that *GameRepository) GetByID(_ context.Context, id string) (*entity.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	game, ok := that.games[id]
	if !ok {
		return nil, apperror.ErrGameNotFound
	}
	return game.Clone(), nil
}

func (that *GameRepository) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.games[id]; !ok {
		return apperror.ErrGameNotFound
	}
	delete(that.games, id)
	return nil
}

// ProfileRepository - map backed stand-in for the postgres profile repository.
type ProfileRepository struct {
	mu       sync.Mutex
	profiles map[string]entity.Profile
}

func NewProfileRepository() *ProfileRepository {
	return &ProfileRepository{
		profiles: make(map[string]entity.Profile),
	}
}

func (that *ProfileRepository) Upsert(_ context.Context, profile *entity.Profile) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.profiles[profile.ID] = *profile
	return nil
}

func (that *ProfileRepository) GetByID(_ context.Context, id string) (*entity.Profile, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	profile, ok := that.profiles[id]
	if !ok {
		return nil, apperror.ErrProfileNotFound
	}
	return &profile, nil
}

func (that *ProfileRepository) SetOnline(_ context.Context, id string, online bool) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	profile, ok := that.profiles[id]
	if !ok {
		return apperror.ErrProfileNotFound
	}
	profile.Online = online
	that.profiles[id] = profile
	return nil
}

func (that *ProfileRepository) ListExcept(_ context.Context, excludeID string) ([]*entity.Profile, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	profiles := make([]*entity.Profile, 0, len(that.profiles))
	for id, profile := range that.profiles {
		profile := profile
		if id == excludeID {
			continue
		}
		profiles = append(profiles, &profile)
	}

	sort.Slice(profiles, func(i, j int) bool {
		if profiles[i].FullName != profiles[j].FullName {
			return profiles[i].FullName < profiles[j].FullName
		}
		return profiles[i].ID < profiles[j].ID
	})

	return profiles, nil
}
