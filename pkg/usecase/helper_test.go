package usecase_test

import (
	"context"
	"errors"

	"github.com/secmon-lab/riskboard/pkg/domain/interfaces"
	"github.com/secmon-lab/riskboard/pkg/domain/model"
	"github.com/secmon-lab/riskboard/pkg/domain/types"
)

var errStore = errors.New("store unavailable")

// fakeProvider records calls and returns canned results
type fakeProvider struct {
	signUp func(email, password string) (*model.Identity, error)
	signIn func(email, password string) (*model.Session, error)

	signUpCalls int
	signInCalls int
	lastEmail   string
}

var _ interfaces.AuthProvider = &fakeProvider{}

func (p *fakeProvider) SignUp(ctx context.Context, email, password string) (*model.Identity, error) {
	p.signUpCalls++
	p.lastEmail = email
	if p.signUp == nil {
		return &model.Identity{ID: "identity-" + email, Email: email}, nil
	}
	return p.signUp(email, password)
}

func (p *fakeProvider) SignIn(ctx context.Context, email, password string) (*model.Session, error) {
	p.signInCalls++
	p.lastEmail = email
	if p.signIn == nil {
		return &model.Session{
			AccessToken: "token",
			Identity:    &model.Identity{ID: "identity-" + email, Email: email},
		}, nil
	}
	return p.signIn(email, password)
}

// stubRepository overrides parts of a real repository
type stubRepository struct {
	interfaces.Repository
	riskTable    interfaces.RiskTableRepository
	riskScenario interfaces.RiskScenarioRepository
	profile      interfaces.ProfileRepository
}

func (r *stubRepository) RiskTable() interfaces.RiskTableRepository {
	if r.riskTable != nil {
		return r.riskTable
	}
	return r.Repository.RiskTable()
}

func (r *stubRepository) RiskScenario() interfaces.RiskScenarioRepository {
	if r.riskScenario != nil {
		return r.riskScenario
	}
	return r.Repository.RiskScenario()
}

func (r *stubRepository) Profile() interfaces.ProfileRepository {
	if r.profile != nil {
		return r.profile
	}
	return r.Repository.Profile()
}

// stubRiskTable wraps a real risk table repository; non-nil hooks replace
// the corresponding method.
type stubRiskTable struct {
	interfaces.RiskTableRepository
	list         func() ([]*model.RiskTableRow, error)
	updateStatus func(pmID, id string, status types.MitigationStatus) (*model.RiskTableRow, error)
	delete       func(pmID, id string) error
	createCalls  int
	updateCalls  int
}

func (r *stubRiskTable) Create(ctx context.Context, row *model.RiskTableRow) (*model.RiskTableRow, error) {
	r.createCalls++
	return r.RiskTableRepository.Create(ctx, row)
}

func (r *stubRiskTable) List(ctx context.Context) ([]*model.RiskTableRow, error) {
	if r.list != nil {
		return r.list()
	}
	return r.RiskTableRepository.List(ctx)
}

func (r *stubRiskTable) UpdateStatus(ctx context.Context, pmID, id string, status types.MitigationStatus) (*model.RiskTableRow, error) {
	r.updateCalls++
	if r.updateStatus != nil {
		return r.updateStatus(pmID, id, status)
	}
	return r.RiskTableRepository.UpdateStatus(ctx, pmID, id, status)
}

func (r *stubRiskTable) Delete(ctx context.Context, pmID, id string) error {
	if r.delete != nil {
		return r.delete(pmID, id)
	}
	return r.RiskTableRepository.Delete(ctx, pmID, id)
}

type failingProfile struct {
	create func() (*model.Profile, error)
	get    func() (*model.Profile, error)
}

func (p *failingProfile) Create(ctx context.Context, profile *model.Profile) (*model.Profile, error) {
	return p.create()
}

func (p *failingProfile) Get(ctx context.Context, id string) (*model.Profile, error) {
	return p.get()
}

type failingScenario struct {
	interfaces.RiskScenarioRepository
}

func (s *failingScenario) List(ctx context.Context) ([]*model.RiskScenario, error) {
	return nil, errStore
}

func (s *failingScenario) Create(ctx context.Context, scenario *model.RiskScenario) (*model.RiskScenario, error) {
	return nil, nil
}
