package services

import (
	"context"
	"strings"

	"github.com/renato0307/alttext/internal/domain"
	"github.com/renato0307/alttext/internal/logging"
	"github.com/renato0307/alttext/internal/ports"
)

// Prompts sent to the vision model
const (
	DescribePrompt = "Output a single sentence that describes this image."
	TagsPrompt     = "Output a comma-separated list of at most 8 short, lowercase keywords " +
		"that could be used as tags for an image with the following description. " +
		"Output only the list.\n\nDescription: "
)

// GenerationService turns vision model completions into descriptions and tags
type GenerationService struct {
	model ports.VisionModel
}

var _ ports.Generator = (*GenerationService)(nil)

// NewGenerationService creates a new GenerationService
func NewGenerationService(model ports.VisionModel) *GenerationService {
	return &GenerationService{
		model: model,
	}
}

// DescribeImage asks the model for a one-sentence description of image.
// Empty output and model failures come back as sentinel descriptions.
func (s *GenerationService) DescribeImage(ctx context.Context, image *domain.Image) (string, error) {
	if image == nil {
		return "", &domain.GenerationError{Stage: domain.StageDescription, Err: domain.ErrNoImage}
	}

	logging.Logger.Debug("Describing image",
		"model", s.model.Name(),
		"mime", image.MIME,
		"size", image.Size)

	text, err := s.model.Complete(ctx, DescribePrompt, image)
	if err != nil {
		if ctx.Err() != nil {
			logging.Logger.Warn("Description request cancelled", "error", err)
			return "", &domain.GenerationError{Stage: domain.StageDescription, Err: ctx.Err()}
		}
		logging.Logger.Error("Failed to generate description", "model", s.model.Name(), "error", err)
		return domain.DescriptionFailed, nil
	}

	text = strings.TrimSpace(text)
	if text == "" {
		logging.Logger.Warn("Model returned an empty description", "model", s.model.Name())
		return domain.DescriptionUnavailable, nil
	}

	logging.Logger.Debug("Description generated", "length", len(text))
	return text, nil
}

// TagsFromDescription asks the model for tags matching text. The result is
// trimmed, stripped of empties and capped at domain.MaxTags; duplicates are
// left for the caller to handle.
func (s *GenerationService) TagsFromDescription(ctx context.Context, text string) ([]string, error) {
	logging.Logger.Debug("Generating tags", "model", s.model.Name(), "description_length", len(text))

	raw, err := s.model.Complete(ctx, TagsPrompt+text, nil)
	if err != nil {
		if ctx.Err() != nil {
			logging.Logger.Warn("Tags request cancelled", "error", err)
			return nil, &domain.GenerationError{Stage: domain.StageTags, Err: ctx.Err()}
		}
		logging.Logger.Error("Failed to generate tags", "model", s.model.Name(), "error", err)
		return append([]string(nil), domain.FailedTags...), nil
	}

	tags := domain.ParseTags(raw)
	if len(tags) == 0 {
		logging.Logger.Warn("Model returned no usable tags", "raw", raw)
		return append([]string(nil), domain.EmptyResultTags...), nil
	}

	logging.Logger.Debug("Tags generated", "count", len(tags))
	return tags, nil
}
