package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/renato0307/alttext/internal/domain"
	"github.com/renato0307/alttext/internal/ports"
)

// Gemini talks to the Google Gemini API
type Gemini struct {
	client *genai.Client
	model  string
}

var _ ports.VisionModel = (*Gemini)(nil)

// NewGemini creates a Gemini provider
func NewGemini(ctx context.Context, cfg Config) (*Gemini, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini: missing GEMINI_API_KEY or GOOGLE_API_KEY")
	}

	opts := []option.ClientOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithEndpoint(cfg.BaseURL))
	}

	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("gemini init: %w", err)
	}
	return &Gemini{client: client, model: cfg.Model}, nil
}

// Name implements ports.VisionModel
func (g *Gemini) Name() string {
	return ProviderGemini + "/" + g.model
}

// Close releases the underlying client
func (g *Gemini) Close() error {
	return g.client.Close()
}

// Complete implements ports.VisionModel
func (g *Gemini) Complete(ctx context.Context, prompt string, image *domain.Image) (string, error) {
	parts := []genai.Part{genai.Text(prompt)}
	if image != nil {
		parts = append(parts, genai.ImageData(image.Format(), image.Bytes()))
	}

	resp, err := g.client.GenerativeModel(g.model).GenerateContent(ctx, parts...)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	return geminiText(resp), nil
}

// geminiText concatenates the text parts of the first candidate
func geminiText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return b.String()
}
