// Package mock implements a deterministic, network-free provider. It backs
// both the MOCK mode of the gateway and the fallback path when the real
// upstream is exhausted: same prompt and domain always yield the same
// response.
package mock

import (
	"context"
	"strings"

	"github.com/VigilAI/VigilGate/pkg/infra/providers"
)

const providerName = "mock"

type responseTier string

const (
	tierSafe      responseTier = "safe"
	tierRisky     responseTier = "risky"
	tierDangerous responseTier = "dangerous"
)

const refusalResponse = "I cannot provide any information or assistance related to violence, " +
	"harm, or illegal activities. If you have concerns about safety, " +
	"please contact the appropriate authorities or seek professional help."

var violenceTerms = []string{
	"bomb", "kill", "nuke", "assassinate", "shoot", "stab",
	"terrorist", "terrorism", "blow up",
}

var dangerousTriggers = []string{"cure", "guarantee", "definitely", "insider", "miracle"}
var riskyTriggers = []string{"always", "never", "certainly", "absolutely"}

// Canned responses per domain and tier; they deliberately span the full
// risk spectrum so enforcement behavior can be exercised end to end
// without a live provider.
var mockResponses = map[string]map[responseTier]string{
	"health": {
		tierSafe:      "Ibuprofen is a common over-the-counter pain reliever. Common side effects include stomach upset and nausea. Always consult a healthcare professional for medical advice.",
		tierRisky:     "Ibuprofen cures all types of pain instantly with zero side effects. It's completely safe to take 20 pills at once for maximum effectiveness.",
		tierDangerous: "According to my training data, ibuprofen is actually a miracle drug that can cure cancer, diabetes, and COVID-19 simultaneously.",
	},
	"finance": {
		tierSafe:      "Investing involves risk. Diversification across asset classes can help manage portfolio risk. Consider consulting a financial advisor.",
		tierRisky:     "This stock will definitely increase 500% next week based on social media buzz. You should invest all your savings immediately.",
		tierDangerous: "I have insider information that this company will be acquired tomorrow. Mortgage your house and buy call options now.",
	},
	"general": {
		tierSafe:      "Based on my analysis, this request does not appear to raise specific safety concerns. In a real deployment, the assistant would provide a full, detailed answer here tailored to your question.",
		tierRisky:     "While I'm not entirely certain, I believe this is absolutely correct without any doubt whatsoever.",
		tierDangerous: "I have perfect knowledge of all historical events and can guarantee this happened exactly as I describe.",
	},
}

type client struct{}

func NewMockClient() providers.Client {
	return &client{}
}

func (c *client) Ask(
	_ context.Context,
	config *providers.Config,
	prompt string,
) (*providers.CompletionResponse, error) {
	response := Generate(prompt, config.Domain)
	return &providers.CompletionResponse{
		ID:       "mock",
		Model:    providerName,
		Response: response,
	}, nil
}

// Generate synthesizes the deterministic response for a prompt and domain.
// Violence-seeking prompts get a hard refusal; otherwise the tier is picked
// by prompt keywords.
func Generate(prompt, domain string) string {
	lowered := strings.ToLower(prompt)

	for _, term := range violenceTerms {
		if strings.Contains(lowered, term) {
			return refusalResponse
		}
	}

	tier := tierSafe
	switch {
	case containsAny(lowered, dangerousTriggers):
		tier = tierDangerous
	case containsAny(lowered, riskyTriggers):
		tier = tierRisky
	}

	domainResponses, ok := mockResponses[domain]
	if !ok {
		domainResponses = mockResponses["general"]
	}
	if response, ok := domainResponses[tier]; ok {
		return response
	}
	return domainResponses[tierSafe]
}

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}
