package cli

// SeedScenarios is exported for testing
var SeedScenarios = seedScenarios

// GetIndexConfig is exported for testing
var GetIndexConfig = getIndexConfig

// MigrateFirestore is exported for testing
var MigrateFirestore = migrateFirestore
