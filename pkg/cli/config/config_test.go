package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/riskboard/pkg/cli/config"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.toml")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0o600)).Required()
	return path
}

func TestLoadCatalog(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
		want    int
	}{
		{
			name: "valid catalog",
			content: `
[[scenario]]
name = "Data breach"
description = "Customer records leak"
mitigation_strategy = "Encrypt at rest"

[[scenario]]
name = "Vendor lock-in"
`,
			want: 2,
		},
		{
			name:    "empty catalog",
			content: ``,
			want:    0,
		},
		{
			name: "missing name",
			content: `
[[scenario]]
description = "no name"
`,
			wantErr: config.ErrInvalidCatalog,
		},
		{
			name: "duplicate name",
			content: `
[[scenario]]
name = "A"

[[scenario]]
name = "A"
`,
			wantErr: config.ErrInvalidCatalog,
		},
		{
			name:    "broken TOML",
			content: `[[scenario`,
			wantErr: config.ErrInvalidCatalog,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog, err := config.LoadCatalog(writeFile(t, tt.content))
			if tt.wantErr != nil {
				gt.Bool(t, errors.Is(err, tt.wantErr)).True()
				return
			}
			gt.NoError(t, err).Required()
			gt.A(t, catalog.ToModels()).Length(tt.want)
		})
	}
}

func TestLoadCatalogFields(t *testing.T) {
	catalog, err := config.LoadCatalog(writeFile(t, `
[[scenario]]
name = "Outage"
description = "Region down"
mitigation_strategy = "Multi-region"
`))
	gt.NoError(t, err).Required()

	scenarios := catalog.ToModels()
	gt.A(t, scenarios).Length(1).Required()
	gt.Value(t, scenarios[0].Name).Equal("Outage")
	gt.Value(t, scenarios[0].Description).Equal("Region down")
	gt.Value(t, scenarios[0].MitigationStrategy).Equal("Multi-region")
	gt.Value(t, scenarios[0].ID).Equal("")
}

func TestLoadCatalogNotFound(t *testing.T) {
	_, err := config.LoadCatalog(filepath.Join(t.TempDir(), "missing.toml"))
	gt.Bool(t, errors.Is(err, config.ErrCatalogNotFound)).True()
}
