package http

import (
	"net/http"

	"github.com/secmon-lab/riskboard/pkg/usecase"
)

func dashboardStatsHandler(uc *usecase.DashboardUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := uc.Stats(r.Context())
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, r, stats)
	}
}
