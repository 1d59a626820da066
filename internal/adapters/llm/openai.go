package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/renato0307/alttext/internal/domain"
	"github.com/renato0307/alttext/internal/ports"
)

// DefaultOpenAIBaseURL points at a local LM Studio server
const DefaultOpenAIBaseURL = "http://localhost:1234/v1"

// OpenAI talks to any OpenAI-compatible chat completion endpoint
type OpenAI struct {
	client *openai.Client
	model  string
}

var _ ports.VisionModel = (*OpenAI)(nil)

// NewOpenAI creates an OpenAI provider. Local servers accept any API key, so
// an empty one is replaced with a placeholder.
func NewOpenAI(cfg Config) *OpenAI {
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = "not-needed"
	}

	config := openai.DefaultConfig(apiKey)
	config.BaseURL = DefaultOpenAIBaseURL
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	return &OpenAI{
		client: openai.NewClientWithConfig(config),
		model:  cfg.Model,
	}
}

// Name implements ports.VisionModel
func (o *OpenAI) Name() string {
	return ProviderOpenAI + "/" + o.model
}

// Complete implements ports.VisionModel. The image is sent as an image_url
// part holding its data URI.
func (o *OpenAI) Complete(ctx context.Context, prompt string, image *domain.Image) (string, error) {
	message := openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser}
	if image == nil {
		message.Content = prompt
	} else {
		message.MultiContent = []openai.ChatMessagePart{
			{
				Type: openai.ChatMessagePartTypeText,
				Text: prompt,
			},
			{
				Type: openai.ChatMessagePartTypeImageURL,
				ImageURL: &openai.ChatMessageImageURL{
					URL:    image.DataURI,
					Detail: openai.ImageURLDetailAuto,
				},
			},
		}
	}

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    o.model,
		Messages: []openai.ChatCompletionMessage{message},
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai chat completion: no choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}
