package auditlogs

const (
	EventTypeDecisionAllowed = "decision.allowed"
	EventTypeDecisionWarned  = "decision.warned"
	EventTypeDecisionBlocked = "decision.blocked"

	EventTypeUpstreamFallback  = "upstream.fallback"
	EventTypeUpstreamExhausted = "upstream.exhausted"
)

const (
	OutcomeDelivered  = "delivered"
	OutcomeSuppressed = "suppressed"
)
