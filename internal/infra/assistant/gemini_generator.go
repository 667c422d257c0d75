// Package assistant generates free-text answers with the Gemini API.
package assistant

import (
	"context"
	"log/slog"
	"strings"

	"petcare/config"
	"petcare/internal/domain/service"
	"petcare/internal/errors"

	generativelanguage "google.golang.org/api/generativelanguage/v1beta"
	"google.golang.org/api/option"
)

// DefaultModel is used when the configuration names none.
const DefaultModel = "gemini-2.5-flash"

// geminiGenerator implements service.TextGenerator.
type geminiGenerator struct {
	models *generativelanguage.ModelsService
	model  string
	logger *slog.Logger
}

// NewGeminiGenerator creates a text generator authenticated with an API key.
func NewGeminiGenerator(ctx context.Context, cfg *config.AssistantConfig, logger *slog.Logger) (service.TextGenerator, error) {
	if cfg == nil || cfg.APIKey == "" {
		return nil, errors.New("assistant api key is required")
	}

	return newGeminiGenerator(ctx, cfg.Model, logger, option.WithAPIKey(cfg.APIKey))
}

func newGeminiGenerator(ctx context.Context, model string, logger *slog.Logger, opts ...option.ClientOption) (*geminiGenerator, error) {
	svc, err := generativelanguage.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create generative language client")
	}
	if model == "" {
		model = DefaultModel
	}

	return &geminiGenerator{
		models: svc.Models,
		model:  "models/" + strings.TrimPrefix(model, "models/"),
		logger: logger,
	}, nil
}

// Generate returns the text parts of the first candidate joined together.
func (g *geminiGenerator) Generate(ctx context.Context, systemInstruction, prompt string) (string, error) {
	req := &generativelanguage.GenerateContentRequest{
		Contents: []*generativelanguage.Content{{
			Role:  "user",
			Parts: []*generativelanguage.Part{{Text: prompt}},
		}},
	}
	if systemInstruction != "" {
		req.SystemInstruction = &generativelanguage.Content{
			Parts: []*generativelanguage.Part{{Text: systemInstruction}},
		}
	}

	resp, err := g.models.GenerateContent(g.model, req).Context(ctx).Do()
	if err != nil {
		return "", errors.Wrap(err, "generate content failed")
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		g.logger.Warn("Generator returned no candidates", slog.String("model", g.model))

		return "", nil
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}

	return sb.String(), nil
}
