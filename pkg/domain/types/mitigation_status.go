package types

// MitigationStatus represents how far a tracked risk has been addressed
type MitigationStatus string

const (
	MitigationStatusNotMitigated       MitigationStatus = "not mitigated"
	MitigationStatusPartiallyMitigated MitigationStatus = "partially mitigated"
	MitigationStatusFullyMitigated     MitigationStatus = "fully mitigated"
)

// AllMitigationStatuses returns all valid mitigation statuses
func AllMitigationStatuses() []MitigationStatus {
	return []MitigationStatus{
		MitigationStatusNotMitigated,
		MitigationStatusPartiallyMitigated,
		MitigationStatusFullyMitigated,
	}
}

// IsValid checks if the mitigation status is one of the known values
func (s MitigationStatus) IsValid() bool {
	switch s {
	case MitigationStatusNotMitigated,
		MitigationStatusPartiallyMitigated,
		MitigationStatusFullyMitigated:
		return true
	default:
		return false
	}
}

func (s MitigationStatus) String() string {
	return string(s)
}
