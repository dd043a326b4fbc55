package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/riskboard/pkg/domain/model"
	"github.com/secmon-lab/riskboard/pkg/repository/memory"
	"github.com/secmon-lab/riskboard/pkg/usecase"
)

func TestRiskScenarioUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("create then list round trip", func(t *testing.T) {
		uc := usecase.NewRiskScenarioUseCase(memory.New())

		created, err := uc.Create(ctx, &model.RiskScenario{
			ID:                 "ignored",
			Name:               "Vendor lock-in",
			Description:        "Single supplier",
			MitigationStrategy: "Dual sourcing",
		})
		gt.NoError(t, err).Required()
		gt.Bool(t, created.ID != "").True()
		gt.Bool(t, created.ID != "ignored").True()

		list, err := uc.List(ctx)
		gt.NoError(t, err).Required()
		gt.A(t, list).Length(1).Required()
		gt.Value(t, list[0]).Equal(created)
	})

	t.Run("empty catalog lists as empty slice", func(t *testing.T) {
		uc := usecase.NewRiskScenarioUseCase(memory.New())

		list, err := uc.List(ctx)
		gt.NoError(t, err)
		gt.Bool(t, list != nil).True()
		gt.A(t, list).Length(0)
	})

	t.Run("name is required", func(t *testing.T) {
		uc := usecase.NewRiskScenarioUseCase(memory.New())

		_, err := uc.Create(ctx, &model.RiskScenario{Description: "no name"})
		gt.Bool(t, errors.Is(err, usecase.ErrValidation)).True()
	})

	t.Run("store inserting nothing", func(t *testing.T) {
		repo := &stubRepository{Repository: memory.New(), riskScenario: &failingScenario{}}
		uc := usecase.NewRiskScenarioUseCase(repo)

		_, err := uc.Create(ctx, &model.RiskScenario{Name: "x"})
		gt.Bool(t, errors.Is(err, usecase.ErrInsertFailed)).True()
	})

	t.Run("store failure on list", func(t *testing.T) {
		repo := &stubRepository{Repository: memory.New(), riskScenario: &failingScenario{}}
		uc := usecase.NewRiskScenarioUseCase(repo)

		_, err := uc.List(ctx)
		gt.Bool(t, errors.Is(err, usecase.ErrUpstream)).True()
	})
}
