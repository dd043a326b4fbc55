package model

// RiskScenario is a catalog entry describing a risk and how to mitigate it.
// ID is assigned by the store.
type RiskScenario struct {
	ID                 string `json:"id,omitempty"`
	Name               string `json:"name" validate:"required"`
	Description        string `json:"description"`
	MitigationStrategy string `json:"mitigation_strategy"`
}

// Validate checks the scenario before it is inserted
func (s *RiskScenario) Validate() error {
	return validateStruct(s)
}
