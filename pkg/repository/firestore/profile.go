package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/riskboard/pkg/domain/model"
	"github.com/secmon-lab/riskboard/pkg/domain/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const profilesCollection = "profiles"

type profileDocument struct {
	ID        string    `firestore:"id"`
	Role      string    `firestore:"role"`
	CreatedAt time.Time `firestore:"created_at"`
}

type profileRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newProfileRepository(client *firestore.Client) *profileRepository {
	return &profileRepository{
		client: client,
	}
}

func (r *profileRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(collectionName(r.collectionPrefix, profilesCollection))
}

func (r *profileRepository) Create(ctx context.Context, profile *model.Profile) (*model.Profile, error) {
	doc := &profileDocument{
		ID:        profile.ID,
		Role:      profile.Role.String(),
		CreatedAt: time.Now().UTC(),
	}

	if _, err := r.collection().Doc(doc.ID).Create(ctx, doc); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to create profile", goerr.V("id", profile.ID))
	}

	return &model.Profile{ID: doc.ID, Role: types.Role(doc.Role)}, nil
}

func (r *profileRepository) Get(ctx context.Context, id string) (*model.Profile, error) {
	if !validDocID(id) {
		return nil, nil
	}
	snap, err := r.collection().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to get profile", goerr.V("id", id))
	}

	var doc profileDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal profile", goerr.V("id", id))
	}

	return &model.Profile{ID: doc.ID, Role: types.Role(doc.Role)}, nil
}
