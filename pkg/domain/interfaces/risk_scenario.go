package interfaces

import (
	"context"

	"github.com/secmon-lab/riskboard/pkg/domain/model"
)

type RiskScenarioRepository interface {
	// Create inserts a scenario and returns it with the store-assigned ID.
	// It returns (nil, nil) when the store accepted the call but inserted
	// no row.
	Create(ctx context.Context, scenario *model.RiskScenario) (*model.RiskScenario, error)

	// List returns every scenario in store order
	List(ctx context.Context) ([]*model.RiskScenario, error)
}
