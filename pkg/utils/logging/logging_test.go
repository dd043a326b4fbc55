package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/riskboard/pkg/domain/model"
	"github.com/secmon-lab/riskboard/pkg/utils/logging"
)

func TestNewRedactsSecrets(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, slog.LevelInfo, logging.FormatJSON)

	logger.Info("login", "request", model.LoginRequest{Email: "pm@example.com", Password: "hunter2"})

	out := buf.String()
	gt.S(t, out).Contains("pm@example.com")
	gt.S(t, out).NotContains("hunter2")
}

func TestNewConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, slog.LevelWarn, logging.FormatConsole)

	logger.Info("hidden")
	logger.Warn("shown")

	gt.S(t, buf.String()).NotContains("hidden")
	gt.S(t, buf.String()).Contains("shown")
}

func TestParseFormat(t *testing.T) {
	f, err := logging.ParseFormat("json")
	gt.NoError(t, err)
	gt.Value(t, f).Equal(logging.FormatJSON)

	_, err = logging.ParseFormat("xml")
	gt.Error(t, err)
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, slog.LevelInfo, logging.FormatJSON)

	ctx := logging.With(context.Background(), logger)
	logging.From(ctx).Info("scoped")
	gt.S(t, buf.String()).Contains("scoped")

	gt.V(t, logging.From(context.Background())).Equal(logging.Default())
}
