package memory

import (
	"context"
	"sync"

	"github.com/secmon-lab/riskboard/pkg/domain/model"
)

type profileRepository struct {
	mu       sync.RWMutex
	profiles map[string]*model.Profile
}

func newProfileRepository() *profileRepository {
	return &profileRepository{
		profiles: make(map[string]*model.Profile),
	}
}

func (r *profileRepository) Create(ctx context.Context, profile *model.Profile) (*model.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Primary key on id
	if _, exists := r.profiles[profile.ID]; exists {
		return nil, nil
	}

	created := *profile
	r.profiles[created.ID] = &created

	result := created
	return &result, nil
}

func (r *profileRepository) Get(ctx context.Context, id string) (*model.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profile, ok := r.profiles[id]
	if !ok {
		return nil, nil
	}

	result := *profile
	return &result, nil
}
