package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/secmon-lab/riskboard/pkg/domain/model"
	"github.com/secmon-lab/riskboard/pkg/usecase"
)

func listAllRiskTablesHandler(uc *usecase.RiskTableUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := uc.ListAll(r.Context())
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, r, rows)
	}
}

func listRiskTableHandler(uc *usecase.RiskTableUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := uc.ListForManager(r.Context(), chi.URLParam(r, "pm_id"))
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, r, rows)
	}
}

func addRiskTableItemHandler(uc *usecase.RiskTableUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var item model.RiskTableItem
		if err := decodeJSON(r, &item); err != nil {
			handleError(w, r, err)
			return
		}

		row, err := uc.Add(r.Context(), chi.URLParam(r, "pm_id"), &item)
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, r, row)
	}
}

func deleteRiskTableItemHandler(uc *usecase.RiskTableUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := uc.Delete(r.Context(), chi.URLParam(r, "pm_id"), chi.URLParam(r, "item_id"))
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, r, result)
	}
}

func updateRiskTableItemHandler(uc *usecase.RiskTableUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var update model.MitigationUpdate
		if err := decodeJSON(r, &update); err != nil {
			handleError(w, r, err)
			return
		}

		row, err := uc.UpdateStatus(r.Context(), chi.URLParam(r, "pm_id"), chi.URLParam(r, "item_id"), &update)
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, r, row)
	}
}
