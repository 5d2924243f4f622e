package pipeline

import (
	"context"
	"strings"

	"adforge/internal/domain"
	"adforge/internal/gateway"
)

// analyzeProduct asks a vision-capable model to describe the uploaded product
// photo. When no image was supplied the step is skipped and the context is
// empty. A failed call is fatal to the pipeline; an empty description from a
// successful call is not.
func (p *Pipeline) analyzeProduct(ctx context.Context, img domain.ProductImage) (string, error) {
	if img.IsZero() {
		return "", nil
	}

	p.logger.Debug().Msg("pipeline: analyzing product image")

	resp, err := p.gateway.ChatCompletion(ctx, gateway.ChatRequest{
		Model: p.textModel,
		Messages: []gateway.Message{{
			Role: "user",
			Parts: []gateway.ContentPart{
				gateway.TextPart(p.templates.VisionInstruction),
				gateway.ImagePart(img.DataURI()),
			},
		}},
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Text()), nil
}
