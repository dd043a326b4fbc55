package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/riskboard/pkg/domain/model"
	"github.com/secmon-lab/riskboard/pkg/domain/types"
	"github.com/secmon-lab/riskboard/pkg/repository/memory"
	"github.com/secmon-lab/riskboard/pkg/usecase"
)

func TestDashboardUseCase_Stats(t *testing.T) {
	ctx := context.Background()

	t.Run("counts rows per scenario", func(t *testing.T) {
		repo := memory.New()
		x := seedScenario(t, repo)
		y := seedScenario(t, repo)
		tables := usecase.NewRiskTableUseCase(repo)

		for _, add := range []struct {
			pm, scenario string
			status       types.MitigationStatus
		}{
			{"A", x, types.MitigationStatusNotMitigated},
			{"B", x, types.MitigationStatusFullyMitigated},
			{"A", y, types.MitigationStatusNotMitigated},
		} {
			_, err := tables.Add(ctx, add.pm, &model.RiskTableItem{RiskScenarioID: add.scenario, MitigationStatus: add.status})
			gt.NoError(t, err).Required()
		}

		stats, err := usecase.NewDashboardUseCase(repo).Stats(ctx)
		gt.NoError(t, err).Required()
		gt.Value(t, stats.RiskDistribution).Equal(map[string]int{x: 2, y: 1})
		gt.Value(t, stats.MitigationProgress[types.MitigationStatusNotMitigated]).Equal(2)
		gt.Value(t, stats.MitigationProgress[types.MitigationStatusFullyMitigated]).Equal(1)
		gt.Value(t, stats.ProjectManagers).Equal(2)
		gt.Value(t, stats.TotalRisks).Equal(3)
	})

	t.Run("no rows", func(t *testing.T) {
		stats, err := usecase.NewDashboardUseCase(memory.New()).Stats(ctx)
		gt.NoError(t, err).Required()
		gt.Bool(t, stats.RiskDistribution != nil).True()
		gt.Value(t, stats.TotalRisks).Equal(0)
	})

	t.Run("store failure", func(t *testing.T) {
		mem := memory.New()
		table := &stubRiskTable{
			RiskTableRepository: mem.RiskTable(),
			list:                func() ([]*model.RiskTableRow, error) { return nil, errStore },
		}
		_, err := usecase.NewDashboardUseCase(&stubRepository{Repository: mem, riskTable: table}).Stats(ctx)
		gt.Bool(t, errors.Is(err, usecase.ErrUpstream)).True()
	})
}
