package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/riskboard/pkg/domain/model"
	"github.com/secmon-lab/riskboard/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const riskTablesCollection = "risk_tables"

type riskTableDocument struct {
	ID               string    `firestore:"id"`
	ProjectManagerID string    `firestore:"project_manager_id"`
	RiskScenarioID   string    `firestore:"risk_scenario_id"`
	MitigationStatus string    `firestore:"mitigation_status"`
	CreatedAt        time.Time `firestore:"created_at"`
}

func (d *riskTableDocument) toModel() *model.RiskTableRow {
	return &model.RiskTableRow{
		ID:               d.ID,
		ProjectManagerID: d.ProjectManagerID,
		RiskScenarioID:   d.RiskScenarioID,
		MitigationStatus: types.MitigationStatus(d.MitigationStatus),
	}
}

type riskTableRepository struct {
	client           *firestore.Client
	collectionPrefix string
	scenarios        *riskScenarioRepository
}

func newRiskTableRepository(client *firestore.Client, scenarios *riskScenarioRepository) *riskTableRepository {
	return &riskTableRepository{
		client:    client,
		scenarios: scenarios,
	}
}

func (r *riskTableRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(collectionName(r.collectionPrefix, riskTablesCollection))
}

// Create checks that the referenced scenario exists in the same transaction,
// since Firestore has no foreign keys.
func (r *riskTableRepository) Create(ctx context.Context, row *model.RiskTableRow) (*model.RiskTableRow, error) {
	if !validDocID(row.RiskScenarioID) {
		return nil, nil
	}

	doc := &riskTableDocument{
		ID:               uuid.NewString(),
		ProjectManagerID: row.ProjectManagerID,
		RiskScenarioID:   row.RiskScenarioID,
		MitigationStatus: row.MitigationStatus.String(),
		CreatedAt:        time.Now().UTC(),
	}
	scenarioRef := r.scenarios.collection().Doc(row.RiskScenarioID)
	rowRef := r.collection().Doc(doc.ID)

	var rejected bool
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		rejected = false
		if _, err := tx.Get(scenarioRef); err != nil {
			if status.Code(err) == codes.NotFound {
				rejected = true
				return nil
			}
			return goerr.Wrap(err, "failed to get risk scenario")
		}
		return tx.Create(rowRef, doc)
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create risk table row",
			goerr.V("risk_scenario_id", row.RiskScenarioID))
	}
	if rejected {
		return nil, nil
	}

	return doc.toModel(), nil
}

func (r *riskTableRepository) List(ctx context.Context) ([]*model.RiskTableRow, error) {
	return r.query(ctx, r.collection().OrderBy("created_at", firestore.Asc))
}

// ListByManager requires the (project_manager_id, created_at) composite
// index created by the migrate command.
func (r *riskTableRepository) ListByManager(ctx context.Context, pmID string) ([]*model.RiskTableRow, error) {
	q := r.collection().
		Where("project_manager_id", "==", pmID).
		OrderBy("created_at", firestore.Asc)
	return r.query(ctx, q)
}

func (r *riskTableRepository) query(ctx context.Context, q firestore.Query) ([]*model.RiskTableRow, error) {
	iter := q.Documents(ctx)
	defer iter.Stop()

	rows := []*model.RiskTableRow{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate risk table rows")
		}

		var rowDoc riskTableDocument
		if err := doc.DataTo(&rowDoc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal risk table row", goerr.V("id", doc.Ref.ID))
		}
		rows = append(rows, rowDoc.toModel())
	}

	return rows, nil
}

// owned decodes snap and reports whether it belongs to pmID
func owned(snap *firestore.DocumentSnapshot, pmID string) (*riskTableDocument, bool, error) {
	var rowDoc riskTableDocument
	if err := snap.DataTo(&rowDoc); err != nil {
		return nil, false, goerr.Wrap(err, "failed to unmarshal risk table row", goerr.V("id", snap.Ref.ID))
	}
	return &rowDoc, rowDoc.ProjectManagerID == pmID, nil
}

func (r *riskTableRepository) Find(ctx context.Context, pmID, id string) (*model.RiskTableRow, error) {
	if !validDocID(id) {
		return nil, nil
	}
	snap, err := r.collection().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to get risk table row", goerr.V("id", id))
	}

	rowDoc, ok, err := owned(snap, pmID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return rowDoc.toModel(), nil
}

func (r *riskTableRepository) UpdateStatus(ctx context.Context, pmID, id string, newStatus types.MitigationStatus) (*model.RiskTableRow, error) {
	if !validDocID(id) {
		return nil, nil
	}
	ref := r.collection().Doc(id)

	var updated *model.RiskTableRow
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		updated = nil
		snap, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return nil
			}
			return goerr.Wrap(err, "failed to get risk table row")
		}

		rowDoc, ok, err := owned(snap, pmID)
		if err != nil || !ok {
			return err
		}

		if err := tx.Update(ref, []firestore.Update{
			{Path: "mitigation_status", Value: newStatus.String()},
		}); err != nil {
			return goerr.Wrap(err, "failed to update mitigation status")
		}

		rowDoc.MitigationStatus = newStatus.String()
		updated = rowDoc.toModel()
		return nil
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update risk table row", goerr.V("id", id))
	}

	return updated, nil
}

func (r *riskTableRepository) Delete(ctx context.Context, pmID, id string) error {
	if !validDocID(id) {
		return nil
	}
	ref := r.collection().Doc(id)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return nil
			}
			return goerr.Wrap(err, "failed to get risk table row")
		}

		_, ok, err := owned(snap, pmID)
		if err != nil || !ok {
			return err
		}

		return tx.Delete(ref)
	})
	if err != nil {
		return goerr.Wrap(err, "failed to delete risk table row", goerr.V("id", id))
	}

	return nil
}
