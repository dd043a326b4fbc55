package config_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/riskboard/pkg/cli/config"
)

func TestSentry_Disabled(t *testing.T) {
	cfg := config.NewSentryForTest("", "test")
	gt.Bool(t, cfg.IsEnabled()).False()

	closer, err := cfg.Configure("v0.0.0")
	gt.NoError(t, err).Required()
	gt.Bool(t, closer != nil).True()
	closer()
}

func TestSentry_Enabled(t *testing.T) {
	cfg := config.NewSentryForTest("https://public@o0.ingest.sentry.io/0", "test")
	gt.Bool(t, cfg.IsEnabled()).True()

	closer, err := cfg.Configure("v0.0.0")
	gt.NoError(t, err).Required()
	closer()
}

func TestSentry_InvalidDSN(t *testing.T) {
	cfg := config.NewSentryForTest("not a dsn", "test")
	gt.Bool(t, cfg.IsEnabled()).True()

	_, err := cfg.Configure("v0.0.0")
	gt.Error(t, err)
}
