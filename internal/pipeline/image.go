package pipeline

import (
	"context"

	"adforge/internal/domain"
	"adforge/internal/gateway"
)

// synthesizeImage sends the engineered prompt to the image model and returns
// the normalized image URL (hosted or data URI). A reply without an image in
// either form is a hard failure.
func (p *Pipeline) synthesizeImage(ctx context.Context, prompt string) (string, error) {
	p.logger.Debug().Msg("pipeline: generating campaign image")

	resp, err := p.gateway.ChatCompletion(ctx, gateway.ChatRequest{
		Model: p.imageModel,
		Messages: []gateway.Message{{
			Role:    "user",
			Content: p.templates.ImageInstruction + "\n\n" + prompt,
		}},
		Modalities: []string{"image", "text"},
	})
	if err != nil {
		return "", err
	}

	imageURL := resp.FirstImageURL()
	if imageURL == "" {
		return "", domain.ErrNoImage
	}
	return imageURL, nil
}
