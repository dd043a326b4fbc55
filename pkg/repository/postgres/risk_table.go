package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/riskboard/pkg/domain/model"
	"github.com/secmon-lab/riskboard/pkg/domain/types"
)

type riskTableRepository struct {
	pool *pgxpool.Pool
}

const riskTableColumns = `id::text, project_manager_id, risk_scenario_id::text, mitigation_status`

func scanRiskTableRow(row pgx.CollectableRow) (*model.RiskTableRow, error) {
	var (
		r      model.RiskTableRow
		status string
	)
	if err := row.Scan(&r.ID, &r.ProjectManagerID, &r.RiskScenarioID, &status); err != nil {
		return nil, err
	}
	r.MitigationStatus = types.MitigationStatus(status)
	return &r, nil
}

// one collects a single row; no row and constraint violations yield nil
func one(rows pgx.Rows, err error, msg string) (*model.RiskTableRow, error) {
	if err != nil {
		return nil, goerr.Wrap(err, msg)
	}
	row, err := pgx.CollectExactlyOneRow(rows, scanRiskTableRow)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isConstraintViolation(err) {
			return nil, nil
		}
		return nil, goerr.Wrap(err, msg)
	}
	return row, nil
}

func (r *riskTableRepository) Create(ctx context.Context, row *model.RiskTableRow) (*model.RiskTableRow, error) {
	if !validUUID(row.RiskScenarioID) {
		return nil, nil
	}

	rows, err := r.pool.Query(ctx,
		`INSERT INTO risk_tables (id, project_manager_id, risk_scenario_id, mitigation_status)
		VALUES ($1::uuid, $2, $3::uuid, $4)
		RETURNING `+riskTableColumns,
		uuid.NewString(), row.ProjectManagerID, row.RiskScenarioID, row.MitigationStatus.String(),
	)
	return one(rows, err, "failed to insert risk table row")
}

func (r *riskTableRepository) List(ctx context.Context) ([]*model.RiskTableRow, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+riskTableColumns+` FROM risk_tables ORDER BY created_at`)
	return collect(rows, err)
}

func (r *riskTableRepository) ListByManager(ctx context.Context, pmID string) ([]*model.RiskTableRow, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+riskTableColumns+` FROM risk_tables
		WHERE project_manager_id = $1 ORDER BY created_at`, pmID)
	return collect(rows, err)
}

func collect(rows pgx.Rows, err error) ([]*model.RiskTableRow, error) {
	if err != nil {
		return nil, goerr.Wrap(err, "failed to select risk table rows")
	}
	result, err := pgx.CollectRows(rows, scanRiskTableRow)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to scan risk table rows")
	}
	if result == nil {
		result = []*model.RiskTableRow{}
	}
	return result, nil
}

func (r *riskTableRepository) Find(ctx context.Context, pmID, id string) (*model.RiskTableRow, error) {
	if !validUUID(id) {
		return nil, nil
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+riskTableColumns+` FROM risk_tables
		WHERE id = $1::uuid AND project_manager_id = $2`, id, pmID)
	return one(rows, err, "failed to select risk table row")
}

func (r *riskTableRepository) UpdateStatus(ctx context.Context, pmID, id string, status types.MitigationStatus) (*model.RiskTableRow, error) {
	if !validUUID(id) {
		return nil, nil
	}

	rows, err := r.pool.Query(ctx,
		`UPDATE risk_tables SET mitigation_status = $3
		WHERE id = $1::uuid AND project_manager_id = $2
		RETURNING `+riskTableColumns, id, pmID, status.String())
	return one(rows, err, "failed to update risk table row")
}

func (r *riskTableRepository) Delete(ctx context.Context, pmID, id string) error {
	if !validUUID(id) {
		return nil
	}

	if _, err := r.pool.Exec(ctx,
		`DELETE FROM risk_tables WHERE id = $1::uuid AND project_manager_id = $2`, id, pmID); err != nil {
		return goerr.Wrap(err, "failed to delete risk table row", goerr.V("id", id))
	}
	return nil
}
