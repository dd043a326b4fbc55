package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/riskboard/pkg/domain/model"
	"github.com/secmon-lab/riskboard/pkg/domain/types"
)

func TestNewDashboardStats(t *testing.T) {
	rows := []*model.RiskTableRow{
		{ID: "1", ProjectManagerID: "pm-a", RiskScenarioID: "X", MitigationStatus: types.MitigationStatusNotMitigated},
		{ID: "2", ProjectManagerID: "pm-b", RiskScenarioID: "X", MitigationStatus: types.MitigationStatusFullyMitigated},
		{ID: "3", ProjectManagerID: "pm-a", RiskScenarioID: "Y", MitigationStatus: types.MitigationStatusNotMitigated},
	}

	stats := model.NewDashboardStats(rows)

	gt.V(t, stats.RiskDistribution).Equal(map[string]int{"X": 2, "Y": 1})
	gt.V(t, stats.MitigationProgress[types.MitigationStatusNotMitigated]).Equal(2)
	gt.V(t, stats.MitigationProgress[types.MitigationStatusFullyMitigated]).Equal(1)
	gt.V(t, stats.ProjectManagers).Equal(2)
	gt.V(t, stats.TotalRisks).Equal(3)
}

func TestNewDashboardStats_Empty(t *testing.T) {
	stats := model.NewDashboardStats(nil)

	gt.V(t, len(stats.RiskDistribution)).Equal(0)
	gt.V(t, stats.ProjectManagers).Equal(0)
	gt.V(t, stats.TotalRisks).Equal(0)
	gt.Bool(t, stats.RiskDistribution != nil).True()
}
