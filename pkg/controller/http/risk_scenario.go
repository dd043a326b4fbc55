package http

import (
	"net/http"

	"github.com/secmon-lab/riskboard/pkg/domain/model"
	"github.com/secmon-lab/riskboard/pkg/usecase"
)

func listRiskScenariosHandler(uc *usecase.RiskScenarioUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		scenarios, err := uc.List(r.Context())
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, r, scenarios)
	}
}

func createRiskScenarioHandler(uc *usecase.RiskScenarioUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var scenario model.RiskScenario
		if err := decodeJSON(r, &scenario); err != nil {
			handleError(w, r, err)
			return
		}

		created, err := uc.Create(r.Context(), &scenario)
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, r, created)
	}
}
