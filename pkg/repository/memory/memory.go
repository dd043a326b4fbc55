package memory

import (
	"github.com/secmon-lab/riskboard/pkg/domain/interfaces"
)

// Memory is an in-process Record Store for development and tests
type Memory struct {
	riskScenario *riskScenarioRepository
	riskTable    *riskTableRepository
	profile      *profileRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	scenarioRepo := newRiskScenarioRepository()

	return &Memory{
		riskScenario: scenarioRepo,
		riskTable:    newRiskTableRepository(scenarioRepo),
		profile:      newProfileRepository(),
	}
}

func (m *Memory) RiskScenario() interfaces.RiskScenarioRepository {
	return m.riskScenario
}

func (m *Memory) RiskTable() interfaces.RiskTableRepository {
	return m.riskTable
}

func (m *Memory) Profile() interfaces.ProfileRepository {
	return m.profile
}

func (m *Memory) Close() error {
	return nil
}
