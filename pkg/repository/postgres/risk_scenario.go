package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/riskboard/pkg/domain/model"
)

type riskScenarioRepository struct {
	pool *pgxpool.Pool
}

const riskScenarioColumns = `id::text, name, description, mitigation_strategy`

func scanRiskScenario(row pgx.CollectableRow) (*model.RiskScenario, error) {
	var s model.RiskScenario
	if err := row.Scan(&s.ID, &s.Name, &s.Description, &s.MitigationStrategy); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *riskScenarioRepository) Create(ctx context.Context, scenario *model.RiskScenario) (*model.RiskScenario, error) {
	rows, err := r.pool.Query(ctx,
		`INSERT INTO risk_scenarios (id, name, description, mitigation_strategy)
		VALUES ($1::uuid, $2, $3, $4)
		RETURNING `+riskScenarioColumns,
		uuid.NewString(), scenario.Name, scenario.Description, scenario.MitigationStrategy,
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to insert risk scenario")
	}

	created, err := pgx.CollectExactlyOneRow(rows, scanRiskScenario)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isConstraintViolation(err) {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to insert risk scenario")
	}
	return created, nil
}

func (r *riskScenarioRepository) List(ctx context.Context) ([]*model.RiskScenario, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+riskScenarioColumns+` FROM risk_scenarios ORDER BY created_at`)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to select risk scenarios")
	}

	scenarios, err := pgx.CollectRows(rows, scanRiskScenario)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to scan risk scenarios")
	}
	if scenarios == nil {
		scenarios = []*model.RiskScenario{}
	}
	return scenarios, nil
}
