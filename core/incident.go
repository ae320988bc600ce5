package core

// IncidentType classifies a service incident.
type IncidentType string

const (
	IncidentBreakdown IncidentType = "breakdown"
	IncidentComplaint IncidentType = "complaint"
	IncidentDelay     IncidentType = "delay"
)

// IsKnown reports whether t is a member of the closed incident type set.
func (t IncidentType) IsKnown() bool {
	switch t {
	case IncidentBreakdown, IncidentComplaint, IncidentDelay:
		return true
	default:
		return false
	}
}

// IncidentSeverity grades an incident. Major incidents always require manager
// review and block invoice finalization until resolved.
type IncidentSeverity string

const (
	SeverityMinor IncidentSeverity = "minor"
	SeverityMajor IncidentSeverity = "major"
)

// IsKnown reports whether s is a member of the closed severity set.
func (s IncidentSeverity) IsKnown() bool {
	return s == SeverityMinor || s == SeverityMajor
}
