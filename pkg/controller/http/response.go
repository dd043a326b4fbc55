package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/riskboard/pkg/usecase"
	"github.com/secmon-lab/riskboard/pkg/utils/errutil"
	"github.com/secmon-lab/riskboard/pkg/utils/logging"
)

// writeJSON writes v with status 200
func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to marshal response"),
			http.StatusInternalServerError, "Internal server error")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(data); err != nil {
		logging.From(r.Context()).Warn("failed to write response", "error", err.Error())
	}
}

// decodeJSON reads the request body into v. A malformed body is a
// validation error.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return goerr.Wrap(usecase.ErrValidation, "request body is not valid JSON", goerr.V("error", err.Error()))
	}
	return nil
}

var errorStatuses = []struct {
	err    error
	status int
	detail string
}{
	{usecase.ErrValidation, http.StatusUnprocessableEntity, ""},
	{usecase.ErrSignupFailed, http.StatusBadRequest, "Signup failed"},
	{usecase.ErrInsertFailed, http.StatusBadRequest, "Insert failed"},
	{usecase.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid login"},
	{usecase.ErrProfileNotFound, http.StatusNotFound, "User profile not found"},
	{usecase.ErrNotFoundOrDenied, http.StatusNotFound, "Item not found or access denied"},
	{usecase.ErrUpdateFailed, http.StatusInternalServerError, "Update failed"},
	{usecase.ErrDeleteFailed, http.StatusInternalServerError, "Delete failed"},
	{usecase.ErrUpstream, http.StatusBadGateway, "Upstream service error"},
}

// errorStatus maps a use case error to a status code and client message
func errorStatus(err error) (int, string) {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			if e.detail == "" {
				return e.status, err.Error()
			}
			return e.status, e.detail
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}

func handleError(w http.ResponseWriter, r *http.Request, err error) {
	status, detail := errorStatus(err)
	errutil.HandleHTTP(r.Context(), w, err, status, detail)
}
