package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/secmon-lab/riskboard/pkg/domain/model"
)

type riskScenarioRepository struct {
	mu        sync.RWMutex
	scenarios map[string]*model.RiskScenario
	order     []string
}

func newRiskScenarioRepository() *riskScenarioRepository {
	return &riskScenarioRepository{
		scenarios: make(map[string]*model.RiskScenario),
	}
}

func copyRiskScenario(s *model.RiskScenario) *model.RiskScenario {
	copied := *s
	return &copied
}

func (r *riskScenarioRepository) Create(ctx context.Context, scenario *model.RiskScenario) (*model.RiskScenario, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := copyRiskScenario(scenario)
	created.ID = uuid.NewString()

	r.scenarios[created.ID] = created
	r.order = append(r.order, created.ID)
	return copyRiskScenario(created), nil
}

func (r *riskScenarioRepository) List(ctx context.Context) ([]*model.RiskScenario, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	scenarios := make([]*model.RiskScenario, 0, len(r.order))
	for _, id := range r.order {
		scenarios = append(scenarios, copyRiskScenario(r.scenarios[id]))
	}
	return scenarios, nil
}

func (r *riskScenarioRepository) exists(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.scenarios[id]
	return ok
}
