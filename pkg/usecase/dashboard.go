package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/riskboard/pkg/domain/interfaces"
	"github.com/secmon-lab/riskboard/pkg/domain/model"
)

type DashboardUseCase struct {
	repo interfaces.Repository
}

func NewDashboardUseCase(repo interfaces.Repository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// Stats aggregates every risk table row in a single read
func (uc *DashboardUseCase) Stats(ctx context.Context) (*model.DashboardStats, error) {
	rows, err := uc.repo.RiskTable().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(upstream(err), "failed to list risk tables for dashboard")
	}
	return model.NewDashboardStats(rows), nil
}
