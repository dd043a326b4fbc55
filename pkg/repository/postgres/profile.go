package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/riskboard/pkg/domain/model"
	"github.com/secmon-lab/riskboard/pkg/domain/types"
)

type profileRepository struct {
	pool *pgxpool.Pool
}

func scanProfile(row pgx.CollectableRow) (*model.Profile, error) {
	var (
		p    model.Profile
		role string
	)
	if err := row.Scan(&p.ID, &role); err != nil {
		return nil, err
	}
	p.Role = types.Role(role)
	return &p, nil
}

func (r *profileRepository) Create(ctx context.Context, profile *model.Profile) (*model.Profile, error) {
	rows, err := r.pool.Query(ctx,
		`INSERT INTO profiles (id, role) VALUES ($1, $2) RETURNING id, role`,
		profile.ID, profile.Role.String())
	if err != nil {
		return nil, goerr.Wrap(err, "failed to insert profile", goerr.V("id", profile.ID))
	}

	created, err := pgx.CollectExactlyOneRow(rows, scanProfile)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isConstraintViolation(err) {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to insert profile", goerr.V("id", profile.ID))
	}
	return created, nil
}

func (r *profileRepository) Get(ctx context.Context, id string) (*model.Profile, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, role FROM profiles WHERE id = $1`, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to select profile", goerr.V("id", id))
	}

	profile, err := pgx.CollectExactlyOneRow(rows, scanProfile)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to select profile", goerr.V("id", id))
	}
	return profile, nil
}
