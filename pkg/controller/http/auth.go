package http

import (
	"net/http"

	"github.com/secmon-lab/riskboard/pkg/domain/model"
	"github.com/secmon-lab/riskboard/pkg/usecase"
)

func signupHandler(uc *usecase.AuthUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req model.SignupRequest
		if err := decodeJSON(r, &req); err != nil {
			handleError(w, r, err)
			return
		}

		result, err := uc.Signup(r.Context(), &req)
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, r, result)
	}
}

func loginHandler(uc *usecase.AuthUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req model.LoginRequest
		if err := decodeJSON(r, &req); err != nil {
			handleError(w, r, err)
			return
		}

		result, err := uc.Login(r.Context(), &req)
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, r, result)
	}
}
