package config

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for configuration validation
var (
	ErrInvalidBackend  = goerr.New("invalid backend")
	ErrMissingSetting  = goerr.New("required setting is missing")
	ErrInvalidCatalog  = goerr.New("invalid catalog")
	ErrCatalogNotFound = goerr.New("catalog file not found")
)

// Context keys for error values
const (
	BackendKey     = "backend"
	CatalogPathKey = "catalog_path"
	ScenarioIdxKey = "scenario_index"
)
