package model

import "github.com/secmon-lab/riskboard/pkg/domain/types"

// DashboardStats aggregates risk table rows across all managers
type DashboardStats struct {
	// RiskDistribution counts rows per risk scenario ID
	RiskDistribution map[string]int `json:"risk_distribution"`
	// MitigationProgress counts rows per mitigation status
	MitigationProgress map[types.MitigationStatus]int `json:"mitigation_progress"`
	ProjectManagers    int                            `json:"project_managers"`
	TotalRisks         int                            `json:"total_risks"`
}

// NewDashboardStats builds the aggregation from rows held in memory
func NewDashboardStats(rows []*RiskTableRow) *DashboardStats {
	stats := &DashboardStats{
		RiskDistribution:   make(map[string]int),
		MitigationProgress: make(map[types.MitigationStatus]int),
	}

	managers := make(map[string]struct{})
	for _, row := range rows {
		stats.RiskDistribution[row.RiskScenarioID]++
		stats.MitigationProgress[row.MitigationStatus]++
		managers[row.ProjectManagerID] = struct{}{}
	}

	stats.ProjectManagers = len(managers)
	stats.TotalRisks = len(rows)
	return stats
}
