package analysis

// RAGStatus is the grounding verdict for a single claim.
type RAGStatus string

const (
	StatusSupported    RAGStatus = "SUPPORTED"
	StatusContradicted RAGStatus = "CONTRADICTED"
	StatusUnverified   RAGStatus = "UNVERIFIED"
)

// RiskLevel is the categorical band derived from the numeric risk score.
type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// Document is one retrieved-context chunk supplied by the caller.
type Document struct {
	Content  string                 `json:"content"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// Request is the immutable input to an analysis.
type Request struct {
	Prompt      string     `json:"prompt"`
	LLMResponse string     `json:"llm_response"`
	RAGResults  []Document `json:"rag_results,omitempty"`
}

// Claim is an atomic factual statement extracted from a model response.
// The text is never mutated after extraction; the status, confidence and
// dependency links are attached by later pipeline stages.
type Claim struct {
	Text       string    `json:"text"`
	RAGStatus  RAGStatus `json:"rag_status"`
	Confidence float64   `json:"confidence"`
	// DependsOn lists the indices of other claims sharing named entities
	// with this one.
	DependsOn []int `json:"depends_on,omitempty"`
}

// ClaimConflict records a pairwise contradiction between two extracted
// claims, by index.
type ClaimConflict struct {
	First  int    `json:"first"`
	Second int    `json:"second"`
	Reason string `json:"reason"`
}

// SignalSet holds the four boolean risk flags, each with an optional
// short reason produced by the detector that raised it.
type SignalSet struct {
	InternalContradiction bool   `json:"internal_contradiction"`
	RAGContradiction      bool   `json:"rag_contradiction"`
	RAGUnverified         bool   `json:"rag_unverified"`
	Overconfidence        bool   `json:"overconfidence"`
	ContradictionDetails  string `json:"contradiction_details,omitempty"`
	OverconfidenceReason  string `json:"overconfidence_reason,omitempty"`
}

// Assessment is the terminal, immutable output of the analyzer.
type Assessment struct {
	RiskScore   int       `json:"risk_score"`
	RiskLevel   RiskLevel `json:"risk_level"`
	Explanation string    `json:"explanation"`
	Signals     SignalSet `json:"signals"`
	Claims      []Claim   `json:"claims"`
	// ClaimConflicts holds pairwise contradictions between claims. These
	// feed enforcement, never the weighted score.
	ClaimConflicts []ClaimConflict `json:"claim_conflicts,omitempty"`

	// Advisory trust intelligence. These never feed the risk score.
	TrustScore      float64 `json:"trust_score"`
	Domain          string  `json:"domain"`
	TimeSensitivity string  `json:"time_sensitivity"`
}

// LevelForScore maps a risk score onto its categorical band.
// Bands: 0-34 LOW, 35-69 MEDIUM, 70-100 HIGH.
func LevelForScore(score int) RiskLevel {
	switch {
	case score >= 70:
		return RiskHigh
	case score >= 35:
		return RiskMedium
	default:
		return RiskLow
	}
}
