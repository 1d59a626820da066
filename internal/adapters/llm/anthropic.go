package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	anthropicopt "github.com/anthropics/anthropic-sdk-go/option"

	"github.com/renato0307/alttext/internal/domain"
	"github.com/renato0307/alttext/internal/ports"
)

// anthropicMaxTokens bounds the response; a sentence or a tag list is short
const anthropicMaxTokens = 256

// Anthropic talks to the Anthropic Messages API
type Anthropic struct {
	client anthropic.Client
	model  string
}

var _ ports.VisionModel = (*Anthropic)(nil)

// NewAnthropic creates an Anthropic provider. Retries are disabled: the
// workflow reports failures instead of retrying.
func NewAnthropic(cfg Config) *Anthropic {
	opts := []anthropicopt.RequestOption{
		anthropicopt.WithAPIKey(cfg.APIKey),
		anthropicopt.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, anthropicopt.WithBaseURL(cfg.BaseURL))
	}

	return &Anthropic{
		client: anthropic.NewClient(opts...),
		model:  cfg.Model,
	}
}

// Name implements ports.VisionModel
func (a *Anthropic) Name() string {
	return ProviderAnthropic + "/" + a.model
}

// Complete implements ports.VisionModel
func (a *Anthropic) Complete(ctx context.Context, prompt string, image *domain.Image) (string, error) {
	var blocks []anthropic.ContentBlockParamUnion
	if image != nil {
		blocks = append(blocks, anthropic.NewImageBlockBase64(image.MIME, image.Base64()))
	}
	blocks = append(blocks, anthropic.NewTextBlock(prompt))

	msg, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(a.model),
		MaxTokens: anthropicMaxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(blocks...),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic messages: %w", err)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if text, ok := block.AsAny().(anthropic.TextBlock); ok {
			b.WriteString(text.Text)
		}
	}
	return b.String(), nil
}
