package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/secmon-lab/riskboard/pkg/domain/model"
)

// Catalog is a seed file of risk scenarios
type Catalog struct {
	Scenarios []CatalogScenario `toml:"scenario"`
}

// CatalogScenario is one [[scenario]] entry
type CatalogScenario struct {
	Name               string `toml:"name"`
	Description        string `toml:"description"`
	MitigationStrategy string `toml:"mitigation_strategy"`
}

// Validate checks that every entry is named and names are unique
func (c *Catalog) Validate() error {
	names := make(map[string]bool)
	for i, s := range c.Scenarios {
		if s.Name == "" {
			return goerr.Wrap(ErrInvalidCatalog, "scenario name is required", goerr.V(ScenarioIdxKey, i))
		}
		if names[s.Name] {
			return goerr.Wrap(ErrInvalidCatalog, "duplicate scenario name",
				goerr.V(ScenarioIdxKey, i), goerr.V("name", s.Name))
		}
		names[s.Name] = true
	}
	return nil
}

// ToModels converts catalog entries into risk scenarios
func (c *Catalog) ToModels() []*model.RiskScenario {
	scenarios := make([]*model.RiskScenario, len(c.Scenarios))
	for i, s := range c.Scenarios {
		scenarios[i] = &model.RiskScenario{
			Name:               s.Name,
			Description:        s.Description,
			MitigationStrategy: s.MitigationStrategy,
		}
	}
	return scenarios
}

// LoadCatalog loads a seed catalog from a TOML file
func LoadCatalog(path string) (*Catalog, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, goerr.Wrap(ErrCatalogNotFound, err.Error(), goerr.V(CatalogPathKey, path))
		}
		return nil, goerr.Wrap(err, "failed to read catalog file", goerr.V(CatalogPathKey, path))
	}

	var catalog Catalog
	if err := toml.Unmarshal(data, &catalog); err != nil {
		return nil, goerr.Wrap(ErrInvalidCatalog, "failed to parse TOML catalog",
			goerr.V(CatalogPathKey, path), goerr.V("error", err.Error()))
	}

	if err := catalog.Validate(); err != nil {
		return nil, goerr.Wrap(err, "catalog validation failed", goerr.V(CatalogPathKey, path))
	}

	return &catalog, nil
}
