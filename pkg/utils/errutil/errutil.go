package errutil

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/riskboard/pkg/utils/logging"
)

// ErrorResponse is the JSON body written for every failed request
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// Handle logs the error with goerr values and reports it to Sentry.
// Sentry capture is a no-op when Sentry has not been initialized.
func Handle(ctx context.Context, err error, msg string) {
	if err == nil {
		return
	}

	logger := logging.From(ctx)

	var ge *goerr.Error
	if errors.As(err, &ge) {
		logger.Error(msg,
			"error", err.Error(),
			"values", ge.Values(),
			"stack", ge.Stacks(),
		)
	} else {
		logger.Error(msg, "error", err.Error())
	}

	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	hub.CaptureException(err)
}

// HandleHTTP logs err and writes a JSON error body with the given status.
// detail is the message shown to the client; 5xx errors are also reported.
func HandleHTTP(ctx context.Context, w http.ResponseWriter, err error, statusCode int, detail string) {
	if err == nil {
		return
	}

	if statusCode >= http.StatusInternalServerError {
		Handle(ctx, err, "HTTP error")
	} else {
		logging.From(ctx).Warn("HTTP error",
			"status", statusCode,
			"error", err.Error(),
		)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(ErrorResponse{Detail: detail}); err != nil {
		logging.From(ctx).Error("failed to encode error response", "error", err.Error())
	}
}
