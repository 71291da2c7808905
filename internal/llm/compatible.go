package llm

import (
	"context"
	"errors"
	"fmt"

	oai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// CompatibleProvider implements Provider with the official openai-go SDK
// against any OpenAI-compatible chat completions endpoint.
type CompatibleProvider struct {
	client oai.Client
	model  string
}

// NewCompatibleProvider creates a provider for cfg.BaseURL.
func NewCompatibleProvider(cfg CompatibleConfig) (*CompatibleProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("compatible provider API key is required")
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("compatible provider base URL is required")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("compatible provider model is required")
	}

	client := oai.NewClient(
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(cfg.BaseURL),
		option.WithMaxRetries(0),
	)
	return &CompatibleProvider{client: client, model: cfg.Model}, nil
}

func (p *CompatibleProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var msgs []oai.ChatCompletionMessageParamUnion
	if req.System != "" {
		msgs = append(msgs, oai.SystemMessage(req.System))
	}
	for _, m := range req.Messages {
		if m.Role == RoleAssistant {
			msgs = append(msgs, oai.AssistantMessage(m.Content))
			continue
		}
		msgs = append(msgs, oai.UserMessage(m.Content))
	}

	params := oai.ChatCompletionNewParams{
		Model:    oai.ChatModel(p.model),
		Messages: msgs,
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = oai.Int(int64(req.MaxTokens))
	}
	if req.Temperature > 0 {
		params.Temperature = oai.Float(req.Temperature)
	}

	resp, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		var apiErr *oai.Error
		if errors.As(err, &apiErr) {
			return nil, mapStatusError(apiErr.StatusCode, err)
		}
		return nil, &ErrProviderUnavailable{Err: err}
	}
	if len(resp.Choices) == 0 {
		return nil, &ErrInvalidResponse{Err: fmt.Errorf("no choices in response")}
	}

	choice := resp.Choices[0]
	stop := "end"
	if choice.FinishReason == "length" {
		stop = "max_tokens"
		if choice.Message.Content == "" {
			return nil, &ErrMaxTokensExceeded{}
		}
	}

	return &Response{
		Text: choice.Message.Content,
		Usage: Usage{
			InputTokens:  int(resp.Usage.PromptTokens),
			OutputTokens: int(resp.Usage.CompletionTokens),
			TotalTokens:  int(resp.Usage.TotalTokens),
		},
		Model:      resp.Model,
		StopReason: stop,
	}, nil
}

func (p *CompatibleProvider) ModelID() string {
	return p.model
}
