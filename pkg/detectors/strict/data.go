package strict

// Phrases that warrant an immediate block regardless of the weighted risk
// score: violence and weapon seeking, miracle-cure and insider-trading
// style overclaiming.
var defaultHighPatterns = []string{
	`cure cancer`, `miracle drug`, `insider information`, `invest all`,
	`mortgage your house`, `no side effects`, `100% safe`, `zero side effects`,
	`take .* pills at once`, `beat the market`,
	`\bbomb\b`, `\bnuke\b`, `\bnuclear attack\b`, `\bblow\s+up\b`,
	`\bmassacre\b`, `\bgenocide\b`, `\bterroris[tm]\b`, `\bassassinate\b`,
	`how to (build|make|create).*bomb`, `how to .*kill`, `how to .*attack`,
}

// Lower-severity marketing-style overclaims; recorded but not block-forcing
// on their own.
var defaultMediumPatterns = []string{
	`\b500%\b`, `\binstantly\b`, `\bovernight\b`, `get rich`, `no risk`,
	`best way to (make|earn) money`, `avoid taxes`,
}
