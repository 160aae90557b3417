package providers

type CompletionResponse struct {
	ID       string `json:"id"`
	Model    string `json:"model"`
	Response string `json:"response"`
	Usage    Usage  `json:"usage"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// System prompts keyed by content domain.
var systemPrompts = map[string]string{
	"health":  "You are a helpful assistant answering health-related questions. Always remind users to consult healthcare professionals.",
	"finance": "You are a helpful assistant answering finance-related questions. Always include appropriate risk disclaimers.",
	"general": "You are a helpful assistant providing accurate and reliable information.",
}

// SystemPromptForDomain returns the canned system prompt for a domain,
// falling back to the general one.
func SystemPromptForDomain(domain string) string {
	if p, ok := systemPrompts[domain]; ok {
		return p
	}
	return systemPrompts["general"]
}
