package config_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/riskboard/pkg/cli/config"
)

func TestConfigErrors_SentinelIdentification(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrInvalidBackend", goerr.Wrap(config.ErrInvalidBackend, "unknown"), config.ErrInvalidBackend},
		{"ErrMissingSetting", goerr.Wrap(config.ErrMissingSetting, "missing"), config.ErrMissingSetting},
		{"ErrInvalidCatalog", goerr.Wrap(config.ErrInvalidCatalog, "bad"), config.ErrInvalidCatalog},
		{"ErrCatalogNotFound", goerr.Wrap(config.ErrCatalogNotFound, "gone"), config.ErrCatalogNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Bool(t, errors.Is(tt.err, tt.sentinel)).True()
			gt.Bool(t, errors.Is(tt.err, config.ErrInvalidBackend) == (tt.sentinel == config.ErrInvalidBackend)).True()
		})
	}
}

func TestConfigErrors_CatalogPathValue(t *testing.T) {
	_, err := config.LoadCatalog("/nonexistent/catalog.toml")
	gt.Error(t, err)

	values := goerr.Values(err)
	gt.Value(t, values[config.CatalogPathKey]).Equal("/nonexistent/catalog.toml")
}
