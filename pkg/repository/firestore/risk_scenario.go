package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/riskboard/pkg/domain/model"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const riskScenariosCollection = "risk_scenarios"

type riskScenarioDocument struct {
	ID                 string    `firestore:"id"`
	Name               string    `firestore:"name"`
	Description        string    `firestore:"description"`
	MitigationStrategy string    `firestore:"mitigation_strategy"`
	CreatedAt          time.Time `firestore:"created_at"`
}

func (d *riskScenarioDocument) toModel() *model.RiskScenario {
	return &model.RiskScenario{
		ID:                 d.ID,
		Name:               d.Name,
		Description:        d.Description,
		MitigationStrategy: d.MitigationStrategy,
	}
}

type riskScenarioRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newRiskScenarioRepository(client *firestore.Client) *riskScenarioRepository {
	return &riskScenarioRepository{
		client: client,
	}
}

func (r *riskScenarioRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(collectionName(r.collectionPrefix, riskScenariosCollection))
}

func (r *riskScenarioRepository) Create(ctx context.Context, scenario *model.RiskScenario) (*model.RiskScenario, error) {
	doc := &riskScenarioDocument{
		ID:                 uuid.NewString(),
		Name:               scenario.Name,
		Description:        scenario.Description,
		MitigationStrategy: scenario.MitigationStrategy,
		CreatedAt:          time.Now().UTC(),
	}

	if _, err := r.collection().Doc(doc.ID).Create(ctx, doc); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to create risk scenario", goerr.V("id", doc.ID))
	}

	return doc.toModel(), nil
}

func (r *riskScenarioRepository) List(ctx context.Context) ([]*model.RiskScenario, error) {
	iter := r.collection().OrderBy("created_at", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	scenarios := []*model.RiskScenario{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate risk scenarios")
		}

		var scenarioDoc riskScenarioDocument
		if err := doc.DataTo(&scenarioDoc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal risk scenario", goerr.V("id", doc.Ref.ID))
		}
		scenarios = append(scenarios, scenarioDoc.toModel())
	}

	return scenarios, nil
}
