package gateway

import (
	"context"
	"fmt"
	"net/http"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const openRouterBaseURL = "https://openrouter.ai/api/v1"

// OpenRouterCompleter answers free-form questions through OpenRouter's
// OpenAI-compatible chat endpoint.
type OpenRouterCompleter struct {
	client openai.Client
	model  openai.ChatModel
	hasKey bool
}

// NewOpenRouterCompleter builds the gateway. httpClient may be nil for a
// direct connection; the daemon passes a SOCKS-wrapped client when a proxy
// is configured.
func NewOpenRouterCompleter(apiKey string, httpClient *http.Client) *OpenRouterCompleter {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithBaseURL(openRouterBaseURL),
	}
	if httpClient != nil {
		opts = append(opts, option.WithHTTPClient(httpClient))
	}

	return &OpenRouterCompleter{
		client: openai.NewClient(opts...),
		model:  openai.ChatModel("openai/gpt-3.5-turbo"),
		hasKey: apiKey != "",
	}
}

func (c *OpenRouterCompleter) Complete(ctx context.Context, system, user string) (string, error) {
	if !c.hasKey {
		return "", ErrNoCredential
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		Model: c.model,
	})
	if err != nil {
		return "", &TransportError{Err: fmt.Errorf("chat completion: %w", err)}
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	content := resp.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("empty message content")
	}

	return content, nil
}
