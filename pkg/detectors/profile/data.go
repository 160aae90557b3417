package profile

// Domain vocabulary. The domain with the most matches wins; no matches at
// all resolve to "general".
var domainPatterns = map[string][]string{
	DomainHealth: {
		`\bmedical\b`, `\bhealth\b`, `\bdisease\b`, `\bdiagnos\w+\b`,
		`\bsymptom\b`, `\btreatment\b`, `\bmedicine\b`, `\bdrug\b`,
		`\bdoctor\b`, `\bpatient\b`, `\bhospital\b`, `\btherapy\b`,
		`\bcure\b`, `\billness\b`, `\bprescription\b`, `\bdose\b`, `\bpain\b`,
	},
	DomainFinance: {
		`\bfinancial\b`, `\binvest\w+\b`, `\bstock\b`, `\bmoney\b`,
		`\bbank\w*\b`, `\bloan\b`, `\bcredit\b`, `\bdebt\b`,
		`\bportfolio\b`, `\bprofit\b`, `\bmarket\b`, `\btrading\b`,
	},
	DomainLegal: {
		`\blegal\b`, `\blaw\b`, `\bcourt\b`, `\brights?\b`,
		`\bcontract\b`, `\bliab\w+\b`, `\battorney\b`, `\blawyer\b`,
		`\bregulation\b`, `\bcompliance\b`, `\blawsuit\b`,
	},
}

// Temporal-language tiers, checked in order of decreasing sensitivity.
var timeSensitiveHigh = []string{
	`\bcurrently\b`, `\bright now\b`, `\btoday\b`, `\bthis (week|month|year)\b`,
	`\brecently\b`, `\blast (week|month|year)\b`, `\bjust (announced|released|happened)\b`,
	`\blatest\b`, `\bup to date\b`, `\breal[- ]time\b`,
}

var timeSensitiveMedium = []string{
	`\bthis (decade|century)\b`, `\bsince (19|20)\d{2}\b`,
	`\bover the (past|last) \w+\b`, `\bin recent (years|times)\b`,
	`\bmodern\b`, `\bcontemporary\b`, `\bpresent day\b`,
}

var timeSensitiveLow = []string{
	`\bhistorically\b`, `\btraditionally\b`, `\bpermanent\b`,
	`\btimeless\b`, `\bfundamental\b`,
}
