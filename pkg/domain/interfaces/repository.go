package interfaces

// Repository is the Record Store. It is constructed once at process start
// and injected into the use cases; Close releases the underlying client.
type Repository interface {
	RiskScenario() RiskScenarioRepository
	RiskTable() RiskTableRepository
	Profile() ProfileRepository

	Close() error
}
