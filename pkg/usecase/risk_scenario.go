package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/riskboard/pkg/domain/interfaces"
	"github.com/secmon-lab/riskboard/pkg/domain/model"
)

type RiskScenarioUseCase struct {
	repo interfaces.Repository
}

func NewRiskScenarioUseCase(repo interfaces.Repository) *RiskScenarioUseCase {
	return &RiskScenarioUseCase{repo: repo}
}

func (uc *RiskScenarioUseCase) List(ctx context.Context) ([]*model.RiskScenario, error) {
	scenarios, err := uc.repo.RiskScenario().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(upstream(err), "failed to list risk scenarios")
	}
	if scenarios == nil {
		scenarios = []*model.RiskScenario{}
	}
	return scenarios, nil
}

// Create inserts a catalog entry. Any ID sent by the caller is replaced by
// the store.
func (uc *RiskScenarioUseCase) Create(ctx context.Context, scenario *model.RiskScenario) (*model.RiskScenario, error) {
	if err := scenario.Validate(); err != nil {
		return nil, err
	}

	created, err := uc.repo.RiskScenario().Create(ctx, &model.RiskScenario{
		Name:               scenario.Name,
		Description:        scenario.Description,
		MitigationStrategy: scenario.MitigationStrategy,
	})
	if err != nil {
		return nil, goerr.Wrap(upstream(err), "failed to create risk scenario")
	}
	if created == nil {
		return nil, goerr.Wrap(ErrInsertFailed, "risk scenario was not inserted", goerr.V("name", scenario.Name))
	}
	return created, nil
}
