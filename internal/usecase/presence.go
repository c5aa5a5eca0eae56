package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-threemark/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-threemark/internal/entity"
)

type PresenceUseCase interface {
	SaveProfile(ctx context.Context, id, fullName string) (*entity.Profile, error)
	ListProfiles(ctx context.Context, excludeID string) ([]*entity.Profile, error)
	SetOnline(ctx context.Context, id string, online bool) error
}

type profileRepoDep interface {
	Upsert(ctx context.Context, profile *entity.Profile) error
	GetByID(ctx context.Context, id string) (*entity.Profile, error)
	SetOnline(ctx context.Context, id string, online bool) error
	ListExcept(ctx context.Context, excludeID string) ([]*entity.Profile, error)
}

type presenceUseCase struct {
	profileRepo profileRepoDep
}

func NewPresenceUseCase(profileRepo profileRepoDep) PresenceUseCase {
	return &presenceUseCase{
		profileRepo: profileRepo,
	}
}

// SaveProfile - creates or renames a profile, keeping its online flag.
func (that *presenceUseCase) SaveProfile(ctx context.Context, id, fullName string) (*entity.Profile, error) {
	profile, err := that.profileRepo.GetByID(ctx, id)
	switch {
	case errors.Is(err, apperror.ErrProfileNotFound):
		profile = &entity.Profile{ID: id}
	case err != nil:
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	profile.FullName = strings.TrimSpace(fullName)

	if err = that.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	return profile, nil
}

func (that *presenceUseCase) ListProfiles(ctx context.Context, excludeID string) ([]*entity.Profile, error) {
	profiles, err := that.profileRepo.ListExcept(ctx, excludeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	for _, profile := range profiles {
		profile.FullName = profile.DisplayName()
	}

	return profiles, nil
}

func (that *presenceUseCase) SetOnline(ctx context.Context, id string, online bool) error {
	if err := that.profileRepo.SetOnline(ctx, id, online); err != nil {
		return fmt.Errorf("failed to set presence: %w", err)
	}

	return nil
}
