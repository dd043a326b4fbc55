package usecase

import (
	"github.com/secmon-lab/riskboard/pkg/domain/interfaces"
)

type UseCases struct {
	repo         interfaces.Repository
	authProvider interfaces.AuthProvider

	Auth         *AuthUseCase
	RiskScenario *RiskScenarioUseCase
	RiskTable    *RiskTableUseCase
	Dashboard    *DashboardUseCase
}

type Option func(*UseCases)

// WithAuthProvider enables the Auth use case. Without it Auth is nil and
// the auth routes are not mounted.
func WithAuthProvider(provider interfaces.AuthProvider) Option {
	return func(uc *UseCases) {
		uc.authProvider = provider
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo: repo,
	}

	for _, opt := range opts {
		opt(uc)
	}

	if uc.authProvider != nil {
		uc.Auth = NewAuthUseCase(repo, uc.authProvider)
	}
	uc.RiskScenario = NewRiskScenarioUseCase(repo)
	uc.RiskTable = NewRiskTableUseCase(repo)
	uc.Dashboard = NewDashboardUseCase(repo)

	return uc
}
