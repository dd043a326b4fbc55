package model

import "github.com/secmon-lab/riskboard/pkg/domain/types"

// RiskTableItem is the body of an add-to-risk-table request. An id sent by
// the client is ignored.
type RiskTableItem struct {
	ID               string                 `json:"id,omitempty"`
	RiskScenarioID   string                 `json:"risk_scenario_id" validate:"required"`
	MitigationStatus types.MitigationStatus `json:"mitigation_status" validate:"required,mitigation_status"`
}

func (i *RiskTableItem) Validate() error {
	return validateStruct(i)
}

// RiskTableRow is the persisted shape of a tracked risk. Every row has
// exactly one owner.
type RiskTableRow struct {
	ID               string                 `json:"id"`
	ProjectManagerID string                 `json:"project_manager_id,omitempty"`
	RiskScenarioID   string                 `json:"risk_scenario_id,omitempty"`
	MitigationStatus types.MitigationStatus `json:"mitigation_status"`
}

// MitigationUpdate is the body of a status update request
type MitigationUpdate struct {
	MitigationStatus types.MitigationStatus `json:"mitigation_status" validate:"required,mitigation_status"`
}

func (u *MitigationUpdate) Validate() error {
	return validateStruct(u)
}

// DeleteResult is returned after a row has been removed
type DeleteResult struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}
