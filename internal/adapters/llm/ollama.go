package llm

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	ollama "github.com/ollama/ollama/api"

	"github.com/renato0307/alttext/internal/domain"
	"github.com/renato0307/alttext/internal/ports"
)

// DefaultOllamaHost is the address of a local Ollama server
const DefaultOllamaHost = "http://localhost:11434"

// Ollama talks to an Ollama server's generate endpoint
type Ollama struct {
	client *ollama.Client
	model  string
}

var _ ports.VisionModel = (*Ollama)(nil)

// NewOllama creates an Ollama provider
func NewOllama(cfg Config) (*Ollama, error) {
	host := cfg.BaseURL
	if host == "" {
		host = DefaultOllamaHost
	}
	if !strings.Contains(host, "://") {
		host = "http://" + host
	}

	u, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("invalid ollama host %q: %w", host, err)
	}

	return &Ollama{
		client: ollama.NewClient(u, http.DefaultClient),
		model:  cfg.Model,
	}, nil
}

// Name implements ports.VisionModel
func (o *Ollama) Name() string {
	return ProviderOllama + "/" + o.model
}

// Complete implements ports.VisionModel
func (o *Ollama) Complete(ctx context.Context, prompt string, image *domain.Image) (string, error) {
	stream := false
	req := &ollama.GenerateRequest{
		Model:  o.model,
		Prompt: prompt,
		Stream: &stream,
	}
	if image != nil {
		req.Images = []ollama.ImageData{image.Bytes()}
	}

	var text strings.Builder
	err := o.client.Generate(ctx, req, func(resp ollama.GenerateResponse) error {
		text.WriteString(resp.Response)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("ollama generate: %w", err)
	}
	return text.String(), nil
}
