package ports

import (
	"context"

	"github.com/renato0307/alttext/internal/domain"
)

// VisionModel is a vision-capable chat-completion backend
type VisionModel interface {
	// Complete sends prompt, plus image when non-nil, and returns the raw
	// model output
	Complete(ctx context.Context, prompt string, image *domain.Image) (string, error)

	// Name identifies the provider and model, used in logs
	Name() string
}

// Generator produces descriptions and tags for the workflow
type Generator interface {
	// DescribeImage returns a one-sentence description of image. Model
	// failures are reported through the sentinel descriptions; only context
	// errors are returned as a *domain.GenerationError.
	DescribeImage(ctx context.Context, image *domain.Image) (string, error)

	// TagsFromDescription derives at most domain.MaxTags tags from text
	TagsFromDescription(ctx context.Context, text string) ([]string, error)
}
