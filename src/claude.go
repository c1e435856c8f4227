package fichegen

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const defaultMaxRetries = 3

// ClaudeClient talks to the Anthropic API and satisfies Client.
type ClaudeClient struct {
	client     *anthropic.Client
	maxRetries int
}

func NewClaudeClient(apiKey string) *ClaudeClient {
	client := anthropic.NewClient(
		option.WithAPIKey(apiKey),
	)
	return &ClaudeClient{
		client:     client,
		maxRetries: defaultMaxRetries,
	}
}

func (c *ClaudeClient) SendMessage(systemPrompt, userPrompt string) (string, error) {
	ctx := context.Background()

	var message *anthropic.Message
	var err error
	for try := 0; try <= c.maxRetries; try++ {
		message, err = c.client.Messages.New(
			ctx,
			anthropic.MessageNewParams{
				Model:     anthropic.F(anthropic.ModelClaude3_5SonnetLatest),
				MaxTokens: anthropic.F(int64(4096)),
				System: anthropic.F([]anthropic.TextBlockParam{
					anthropic.NewTextBlock(systemPrompt),
				}),
				Messages: anthropic.F([]anthropic.MessageParam{
					anthropic.NewUserMessage(
						anthropic.NewTextBlock(userPrompt),
					),
				}),
			},
		)
		if err == nil {
			break
		}
	}
	if err != nil {
		return "", fmt.Errorf("claude api error: %w", err)
	}

	if len(message.Content) == 0 {
		return "", fmt.Errorf("empty response from claude")
	}

	// Extract text from the first content block
	return message.Content[0].Text, nil
}
