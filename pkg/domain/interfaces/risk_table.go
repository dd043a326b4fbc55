package interfaces

import (
	"context"

	"github.com/secmon-lab/riskboard/pkg/domain/model"
	"github.com/secmon-lab/riskboard/pkg/domain/types"
)

// RiskTableRepository stores risk table rows. Every lookup and mutation on a
// single row is keyed by the compound (id, project_manager_id) pair, so a
// row owned by another manager behaves exactly like a missing row.
type RiskTableRepository interface {
	// Create inserts a row. It returns (nil, nil) when the store rejects the
	// row, e.g. because risk_scenario_id references no scenario.
	Create(ctx context.Context, row *model.RiskTableRow) (*model.RiskTableRow, error)

	// List returns rows of all managers
	List(ctx context.Context) ([]*model.RiskTableRow, error)

	// ListByManager returns rows owned by pmID
	ListByManager(ctx context.Context, pmID string) ([]*model.RiskTableRow, error)

	// Find returns the row matching both keys, or (nil, nil)
	Find(ctx context.Context, pmID, id string) (*model.RiskTableRow, error)

	// UpdateStatus changes mitigation_status of the row matching both keys
	// and returns the updated row, or (nil, nil) when nothing matched.
	UpdateStatus(ctx context.Context, pmID, id string, status types.MitigationStatus) (*model.RiskTableRow, error)

	// Delete removes the row matching both keys. Deleting nothing is not
	// an error.
	Delete(ctx context.Context, pmID, id string) error
}
