package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/secmon-lab/riskboard/pkg/domain/model"
	"github.com/secmon-lab/riskboard/pkg/domain/types"
)

type riskTableRepository struct {
	mu        sync.RWMutex
	rows      map[string]*model.RiskTableRow
	order     []string
	scenarios *riskScenarioRepository
}

func newRiskTableRepository(scenarios *riskScenarioRepository) *riskTableRepository {
	return &riskTableRepository{
		rows:      make(map[string]*model.RiskTableRow),
		scenarios: scenarios,
	}
}

func copyRiskTableRow(row *model.RiskTableRow) *model.RiskTableRow {
	copied := *row
	return &copied
}

func (r *riskTableRepository) Create(ctx context.Context, row *model.RiskTableRow) (*model.RiskTableRow, error) {
	// Foreign key on risk_scenario_id, as a relational store would enforce it
	if !r.scenarios.exists(row.RiskScenarioID) {
		return nil, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	created := copyRiskTableRow(row)
	created.ID = uuid.NewString()

	r.rows[created.ID] = created
	r.order = append(r.order, created.ID)
	return copyRiskTableRow(created), nil
}

func (r *riskTableRepository) List(ctx context.Context) ([]*model.RiskTableRow, error) {
	return r.filter(func(*model.RiskTableRow) bool { return true }), nil
}

func (r *riskTableRepository) ListByManager(ctx context.Context, pmID string) ([]*model.RiskTableRow, error) {
	return r.filter(func(row *model.RiskTableRow) bool {
		return row.ProjectManagerID == pmID
	}), nil
}

func (r *riskTableRepository) filter(match func(*model.RiskTableRow) bool) []*model.RiskTableRow {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := make([]*model.RiskTableRow, 0, len(r.order))
	for _, id := range r.order {
		if row := r.rows[id]; match(row) {
			rows = append(rows, copyRiskTableRow(row))
		}
	}
	return rows
}

// lookup must be called with mu held
func (r *riskTableRepository) lookup(pmID, id string) (*model.RiskTableRow, bool) {
	row, ok := r.rows[id]
	if !ok || row.ProjectManagerID != pmID {
		return nil, false
	}
	return row, true
}

func (r *riskTableRepository) Find(ctx context.Context, pmID, id string) (*model.RiskTableRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	row, ok := r.lookup(pmID, id)
	if !ok {
		return nil, nil
	}
	return copyRiskTableRow(row), nil
}

func (r *riskTableRepository) UpdateStatus(ctx context.Context, pmID, id string, status types.MitigationStatus) (*model.RiskTableRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	row, ok := r.lookup(pmID, id)
	if !ok {
		return nil, nil
	}

	row.MitigationStatus = status
	return copyRiskTableRow(row), nil
}

func (r *riskTableRepository) Delete(ctx context.Context, pmID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.lookup(pmID, id); !ok {
		return nil
	}

	delete(r.rows, id)
	r.order = slices.DeleteFunc(r.order, func(v string) bool { return v == id })
	return nil
}
