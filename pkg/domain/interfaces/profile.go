package interfaces

import (
	"context"

	"github.com/secmon-lab/riskboard/pkg/domain/model"
)

type ProfileRepository interface {
	// Create inserts a profile. It returns (nil, nil) when a profile with
	// the same ID already exists.
	Create(ctx context.Context, profile *model.Profile) (*model.Profile, error)

	// Get returns the profile for an identity ID, or (nil, nil)
	Get(ctx context.Context, id string) (*model.Profile, error)
}
