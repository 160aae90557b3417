package anthropic

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/VigilAI/VigilGate/pkg/infra/providers"
)

const providerName = "anthropic"

const defaultMaxTokens = 1024

type client struct {
	clientPool *sync.Map
}

func NewAnthropicClient() providers.Client {
	return &client{
		clientPool: &sync.Map{},
	}
}

func (c *client) Ask(
	ctx context.Context,
	config *providers.Config,
	prompt string,
) (*providers.CompletionResponse, error) {
	if config.Credentials.ApiKey == "" {
		return nil, providers.NewUpstreamError(providers.FaultAuth, providerName, errors.New("API key is required"))
	}

	anthropicClient := c.getOrCreateClient(config.Credentials.ApiKey)

	var messages []anthropic.MessageParam
	if prompt != "" {
		messages = append(messages, anthropic.NewUserMessage(
			anthropic.NewTextBlock(prompt),
		))
	}

	model := anthropic.ModelClaude3_5HaikuLatest
	if config.Model != "" {
		model = anthropic.Model(config.Model)
	}

	maxTokens := int64(config.MaxTokens)
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	params := anthropic.MessageNewParams{
		Model:     model,
		Messages:  messages,
		MaxTokens: maxTokens,
	}

	if config.SystemPrompt != "" {
		params.System = []anthropic.TextBlockParam{
			{
				Text: config.SystemPrompt,
				Type: "text",
			},
		}
	}

	if config.Temperature > 0 {
		params.Temperature = anthropic.Float(config.Temperature)
	}

	message, err := anthropicClient.Messages.New(ctx, params)
	if err != nil {
		return nil, classify(err)
	}

	if len(message.Content) == 0 {
		return nil, providers.NewUpstreamError(providers.FaultMalformed, providerName, errors.New("no completions returned"))
	}

	var responseText string
	for _, content := range message.Content {
		if content.Type == "text" {
			responseText = content.Text
			break
		}
	}
	if responseText == "" {
		return nil, providers.NewUpstreamError(providers.FaultMalformed, providerName, errors.New("no text content returned"))
	}

	return &providers.CompletionResponse{
		ID:       message.ID,
		Model:    string(model),
		Response: responseText,
		Usage: providers.Usage{
			PromptTokens:     int(message.Usage.InputTokens),
			CompletionTokens: int(message.Usage.OutputTokens),
			TotalTokens:      int(message.Usage.InputTokens + message.Usage.OutputTokens),
		},
	}, nil
}

func classify(err error) error {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		return providers.ClassifyStatus(providerName, apiErr.StatusCode, fmt.Errorf("anthropic request failed: %w", err))
	}
	return providers.Classify(providerName, fmt.Errorf("anthropic request failed: %w", err))
}

func (c *client) getOrCreateClient(apiKey string) anthropic.Client {
	if clientVal, ok := c.clientPool.Load(apiKey); ok {
		if cli, ok := clientVal.(anthropic.Client); ok {
			return cli
		}
	}
	newClient := anthropic.NewClient(
		option.WithAPIKey(apiKey),
	)
	c.clientPool.Store(apiKey, newClient)
	return newClient
}
