package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/riskboard/pkg/domain/interfaces"
	"github.com/secmon-lab/riskboard/pkg/domain/model"
	"github.com/secmon-lab/riskboard/pkg/utils/logging"
)

const deletedMessage = "Risk table item deleted"

type RiskTableUseCase struct {
	repo interfaces.Repository
}

func NewRiskTableUseCase(repo interfaces.Repository) *RiskTableUseCase {
	return &RiskTableUseCase{repo: repo}
}

func requireManager(pmID string) error {
	if pmID == "" {
		return goerr.Wrap(ErrValidation, "project manager ID is required")
	}
	return nil
}

// Add tracks a scenario in the risk table of pmID. The owner is always
// pmID, whatever the item carries.
func (uc *RiskTableUseCase) Add(ctx context.Context, pmID string, item *model.RiskTableItem) (*model.RiskTableRow, error) {
	if err := item.Validate(); err != nil {
		return nil, err
	}
	if err := requireManager(pmID); err != nil {
		return nil, err
	}

	row, err := uc.repo.RiskTable().Create(ctx, &model.RiskTableRow{
		ProjectManagerID: pmID,
		RiskScenarioID:   item.RiskScenarioID,
		MitigationStatus: item.MitigationStatus,
	})
	if err != nil {
		return nil, goerr.Wrap(upstream(err), "failed to add risk table item",
			goerr.V(ProjectManagerIDKey, pmID), goerr.V(ScenarioIDKey, item.RiskScenarioID))
	}
	if row == nil {
		return nil, goerr.Wrap(ErrInsertFailed, "risk table item was not inserted",
			goerr.V(ProjectManagerIDKey, pmID), goerr.V(ScenarioIDKey, item.RiskScenarioID))
	}
	return row, nil
}

func (uc *RiskTableUseCase) ListForManager(ctx context.Context, pmID string) ([]*model.RiskTableRow, error) {
	rows, err := uc.repo.RiskTable().ListByManager(ctx, pmID)
	if err != nil {
		return nil, goerr.Wrap(upstream(err), "failed to list risk table", goerr.V(ProjectManagerIDKey, pmID))
	}
	if rows == nil {
		rows = []*model.RiskTableRow{}
	}
	return rows, nil
}

func (uc *RiskTableUseCase) ListAll(ctx context.Context) ([]*model.RiskTableRow, error) {
	rows, err := uc.repo.RiskTable().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(upstream(err), "failed to list risk tables")
	}
	if rows == nil {
		rows = []*model.RiskTableRow{}
	}
	return rows, nil
}

// find returns the row only when it exists and is owned by pmID
func (uc *RiskTableUseCase) find(ctx context.Context, pmID, itemID string) (*model.RiskTableRow, error) {
	row, err := uc.repo.RiskTable().Find(ctx, pmID, itemID)
	if err != nil {
		return nil, goerr.Wrap(upstream(err), "failed to look up risk table item",
			goerr.V(ProjectManagerIDKey, pmID), goerr.V(ItemIDKey, itemID))
	}
	if row == nil {
		return nil, goerr.Wrap(ErrNotFoundOrDenied, "risk table item not found",
			goerr.V(ProjectManagerIDKey, pmID), goerr.V(ItemIDKey, itemID))
	}
	return row, nil
}

func (uc *RiskTableUseCase) Delete(ctx context.Context, pmID, itemID string) (*model.DeleteResult, error) {
	if _, err := uc.find(ctx, pmID, itemID); err != nil {
		return nil, err
	}

	if err := uc.repo.RiskTable().Delete(ctx, pmID, itemID); err != nil {
		return nil, goerr.Wrap(upstream(err), "failed to delete risk table item",
			goerr.V(ProjectManagerIDKey, pmID), goerr.V(ItemIDKey, itemID))
	}

	remaining, err := uc.repo.RiskTable().Find(ctx, pmID, itemID)
	if err != nil {
		return nil, goerr.Wrap(upstream(err), "failed to verify deletion",
			goerr.V(ProjectManagerIDKey, pmID), goerr.V(ItemIDKey, itemID))
	}
	if remaining != nil {
		return nil, goerr.Wrap(ErrDeleteFailed, "risk table item still present after delete",
			goerr.V(ProjectManagerIDKey, pmID), goerr.V(ItemIDKey, itemID))
	}

	logging.From(ctx).Info("risk table item deleted", ProjectManagerIDKey, pmID, ItemIDKey, itemID)

	return &model.DeleteResult{Message: deletedMessage, ID: itemID}, nil
}

// UpdateStatus changes the mitigation status of a row owned by pmID
func (uc *RiskTableUseCase) UpdateStatus(ctx context.Context, pmID, itemID string, update *model.MitigationUpdate) (*model.RiskTableRow, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}

	if _, err := uc.find(ctx, pmID, itemID); err != nil {
		return nil, err
	}

	updated, err := uc.repo.RiskTable().UpdateStatus(ctx, pmID, itemID, update.MitigationStatus)
	if err != nil {
		return nil, goerr.Wrap(upstream(err), "failed to update risk table item",
			goerr.V(ProjectManagerIDKey, pmID), goerr.V(ItemIDKey, itemID))
	}

	if updated == nil {
		// The store acknowledged the update without returning the row
		return &model.RiskTableRow{ID: itemID, MitigationStatus: update.MitigationStatus}, nil
	}
	if updated.MitigationStatus != update.MitigationStatus {
		return nil, goerr.Wrap(ErrUpdateFailed, "mitigation status was not applied",
			goerr.V(ProjectManagerIDKey, pmID), goerr.V(ItemIDKey, itemID),
			goerr.V(StatusKey, updated.MitigationStatus))
	}
	return updated, nil
}
