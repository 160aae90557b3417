package auditlogs

import "time"

// Event is one audit trail entry, serialized as a single JSON line.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Type      string    `json:"type"`
	RecordID  string    `json:"record_id,omitempty"`
	Domain    string    `json:"domain,omitempty"`
	Action    string    `json:"action,omitempty"`
	RiskScore int       `json:"risk_score"`
	RiskLevel string    `json:"risk_level,omitempty"`
	Outcome   string    `json:"outcome,omitempty"`
	Detail    string    `json:"detail,omitempty"`
}
