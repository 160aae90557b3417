package overconfidence

// Default absolute-certainty markers. Overridable through configuration so
// the lexicon can be tuned without a redeploy.
var defaultCertaintyMarkers = []string{
	`\bdefinitely\b`,
	`\bguaranteed?\b`,
	`\bcertainly\b`,
	`\babsolutely\b`,
	`\bwithout (a )?doubt\b`,
	`\b100%\b`,
	`\balways\b`,
	`\bnever\b`,
	`\bimpossible\b`,
	`\bmust be\b`,
	`\bno question\b`,
	`\bwill definitely\b`,
}

// Sensitive-domain vocabulary where confident quantified claims are risky.
var defaultSensitiveTerms = []string{
	`\bmedical\b`, `\bhealth\b`, `\bdisease\b`, `\bdiagnos\w+\b`,
	`\blegal\b`, `\blaw\b`, `\bcourt\b`, `\brights?\b`,
	`\bfinancial\b`, `\binvest\w+\b`, `\bstock\b`, `\bmoney\b`,
	`\bsafety\b`, `\bemergency\b`,
}

const (
	reasonCertaintyLanguage = "High confidence language detected"
	reasonSensitiveDomain   = "Confident advice in sensitive domain"
)
