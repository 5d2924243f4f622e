package pipeline

import (
	"context"
	"strings"

	"adforge/internal/domain"
	"adforge/internal/gateway"
)

// captionLanguages maps a detected locale to the language name used in the
// caption instruction. English needs no extra rule.
var captionLanguages = map[string]string{
	"id": "Indonesian",
	"es": "Spanish",
	"fr": "French",
	"de": "German",
	"pt": "Portuguese",
	"ja": "Japanese",
}

// writeCaption asks the text model for a social caption matching the campaign.
// The step depends only on the original request, never on the generated image,
// and absorbs every failure: a campaign without a caption is still a success.
func (p *Pipeline) writeCaption(ctx context.Context, req domain.CampaignRequest, locale string) string {
	languageRule := ""
	if lang, ok := captionLanguages[strings.ToLower(strings.TrimSpace(locale))]; ok {
		languageRule = "\nWrite the caption in " + lang + "."
	}

	vars := map[string]string{
		"brandName":    req.BrandName,
		"industry":     req.Industry,
		"theme":        req.Theme,
		"headline":     req.HeadlineText,
		"visualStyle":  req.VisualStyle,
		"languageRule": languageRule,
	}

	resp, err := p.gateway.ChatCompletion(ctx, gateway.ChatRequest{
		Model: p.textModel,
		Messages: []gateway.Message{
			{Role: "system", Content: renderTemplate(p.templates.CaptionSystem, vars)},
			{Role: "user", Content: renderTemplate(p.templates.CaptionUser, vars)},
		},
	})
	if err != nil {
		p.logger.Warn().Err(err).Msg("pipeline: caption generation failed, continuing without caption")
		return ""
	}
	return strings.TrimSpace(resp.Text())
}
