package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rocketscienceinc/tictactoe-threemark/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-threemark/internal/entity"
)

type ProfileRepository interface {
	Upsert(ctx context.Context, profile *entity.Profile) error
	GetByID(ctx context.Context, id string) (*entity.Profile, error)
	SetOnline(ctx context.Context, id string, online bool) error
	ListExcept(ctx context.Context, excludeID string) ([]*entity.Profile, error)
}

type dbProfile struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) ProfileRepository {
	return &dbProfile{
		pool: pool,
	}
}

func (that *dbProfile) Upsert(ctx context.Context, profile *entity.Profile) error {
	query := `
		INSERT INTO profiles (id, full_name, online)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE
		   SET full_name = EXCLUDED.full_name,
		       online = EXCLUDED.online,
		       updated_at = now()`

	if _, err := that.pool.Exec(ctx, query, profile.ID, profile.FullName, profile.Online); err != nil {
		return fmt.Errorf("can't save profile: %w", err)
	}

	return nil
}

func (that *dbProfile) GetByID(ctx context.Context, id string) (*entity.Profile, error) {
	query := `SELECT id, full_name, online FROM profiles WHERE id = $1`

	var profile entity.Profile

	err := that.pool.QueryRow(ctx, query, id).Scan(&profile.ID, &profile.FullName, &profile.Online)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperror.ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("can't find profile: %w", err)
	}

	return &profile, nil
}

func (that *dbProfile) SetOnline(ctx context.Context, id string, online bool) error {
	query := `UPDATE profiles SET online = $2, updated_at = now() WHERE id = $1`

	tag, err := that.pool.Exec(ctx, query, id, online)
	if err != nil {
		return fmt.Errorf("can't update presence: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperror.ErrProfileNotFound
	}

	return nil
}

func (that *dbProfile) ListExcept(ctx context.Context, excludeID string) ([]*entity.Profile, error) {
	query := `SELECT id, full_name, online FROM profiles WHERE id <> $1 ORDER BY full_name, id`

	rows, err := that.pool.Query(ctx, query, excludeID)
	if err != nil {
		return nil, fmt.Errorf("can't list profiles: %w", err)
	}
	defer rows.Close()

	profiles := make([]*entity.Profile, 0)
	for rows.Next() {
		var profile entity.Profile
		if err = rows.Scan(&profile.ID, &profile.FullName, &profile.Online); err != nil {
			return nil, fmt.Errorf("can't scan profile: %w", err)
		}
		profiles = append(profiles, &profile)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't read profiles: %w", err)
	}

	return profiles, nil
}
