package pipeline

import (
	"context"
	"strings"

	"adforge/internal/domain"
	"adforge/internal/gateway"
)

// ComposerMessages builds the prompt-engineering conversation for a request.
// Split out from the gateway call so the wording is testable without a model.
func (p *Pipeline) ComposerMessages(req domain.CampaignRequest, productContext string) []gateway.Message {
	productSection := ""
	if strings.TrimSpace(productContext) != "" {
		productSection = renderTemplate(p.templates.ProductDirective, map[string]string{
			"context": strings.TrimSpace(productContext),
		})
	}

	vars := map[string]string{
		"brandName":       req.BrandName,
		"industry":        req.Industry,
		"theme":           req.Theme,
		"headline":        req.HeadlineText,
		"visualStyle":     req.VisualStyle,
		"brandColor":      req.BrandColor,
		"styleDescriptor": p.styles.Descriptor(req.VisualStyle),
		"productSection":  productSection,
	}

	return []gateway.Message{
		{Role: "system", Content: renderTemplate(p.templates.ComposerSystem, vars)},
		{Role: "user", Content: renderTemplate(p.templates.ComposerUser, vars)},
	}
}

// composePrompt runs the prompt-engineering completion and returns the
// engineered image prompt. Whitespace-only output is a hard failure.
func (p *Pipeline) composePrompt(ctx context.Context, req domain.CampaignRequest, productContext string) (string, error) {
	p.logger.Debug().Str("style", req.VisualStyle).Msg("pipeline: engineering image prompt")

	resp, err := p.gateway.ChatCompletion(ctx, gateway.ChatRequest{
		Model:    p.textModel,
		Messages: p.ComposerMessages(req, productContext),
	})
	if err != nil {
		return "", err
	}

	prompt := strings.TrimSpace(resp.Text())
	if prompt == "" {
		return "", domain.ErrEmptyPrompt
	}
	return prompt, nil
}
