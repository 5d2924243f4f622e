// Package adimage renders a single styled ad image from a canned style prompt
// table, optionally conditioned on uploaded logo and product references.
package adimage

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"adforge/internal/domain"
	"adforge/internal/gateway"
)

// DefaultStyle is used when the requested style key is unknown.
const DefaultStyle = "photorealistic"

// stylePrompts maps a style key to its full prompt template. {{imageContext}}
// expands to the reference-image guidance, the remaining tokens to request
// fields.
var stylePrompts = map[string]string{
	"photorealistic": `Create a premium social media ad (1:1 square format) in a high-end product photography style. Clean studio background, dramatic lighting, professional commercial look.{{imageContext}} Feature the text "{{headline}}" prominently in elegant serif typography. Product: {{description}} for brand {{brandName}}. Ultra high resolution.`,
	"cyberpunk":      `Create a social media ad (1:1 square format) in a vibrant neon cyberpunk style. Dark moody background with electric blue, pink and purple neon glowing lights, futuristic feel.{{imageContext}} Feature the text "{{headline}}" in bold glowing neon typography. Brand: {{brandName}}. Ultra high resolution.`,
	"pastel":         `Create a social media ad (1:1 square format) in a minimalist pastel style. Soft blush pink, lavender, and mint colors, lots of negative space, clean geometric shapes.{{imageContext}} Feature the text "{{headline}}" in modern sans-serif typography. Brand: {{brandName}}. Ultra high resolution.`,
	"3d-render":      `Create a social media ad (1:1 square format) in a stunning 3D render style. Abstract geometric shapes, octane render quality, glossy materials, dramatic lighting with reflections.{{imageContext}} Feature the text "{{headline}}" in bold 3D extruded typography. Brand: {{brandName}}. Ultra high resolution.`,
	"lifestyle":      `Create a social media ad (1:1 square format) in a warm lifestyle photography style. People enjoying life, golden hour warm lighting, authentic and relatable.{{imageContext}} Feature the text "{{headline}}" in friendly modern typography as overlay. Product: {{description}} for brand {{brandName}}. Ultra high resolution.`,
}

// Generator performs single-shot ad image generation.
type Generator struct {
	gateway gateway.Completer
	model   string
	logger  zerolog.Logger
}

// NewGenerator constructs an ad image generator bound to an image model.
func NewGenerator(gw gateway.Completer, model string, logger zerolog.Logger) *Generator {
	return &Generator{gateway: gw, model: model, logger: logger}
}

// BuildPrompt resolves the style template and substitutes the request fields.
// Exported so the wording is testable without a gateway.
func BuildPrompt(req domain.AdImageRequest) string {
	tpl, ok := stylePrompts[strings.ToLower(strings.TrimSpace(req.Style))]
	if !ok {
		tpl = stylePrompts[DefaultStyle]
	}

	var hints []string
	if strings.TrimSpace(req.LogoURL) != "" {
		hints = append(hints, "The brand logo is provided - incorporate it naturally into the design.")
	}
	if strings.TrimSpace(req.ProductImageURL) != "" {
		hints = append(hints, "A product image is provided - feature the product prominently in the ad.")
	}
	imageContext := ""
	if len(hints) > 0 {
		imageContext = " " + strings.Join(hints, " ")
	}

	return strings.NewReplacer(
		"{{imageContext}}", imageContext,
		"{{headline}}", req.Headline,
		"{{description}}", req.Description,
		"{{brandName}}", req.BrandName,
	).Replace(tpl)
}

// Generate sends the styled prompt (plus any reference images) to the image
// model and returns the normalized image URL.
func (g *Generator) Generate(ctx context.Context, req domain.AdImageRequest) (string, error) {
	parts := []gateway.ContentPart{gateway.TextPart(BuildPrompt(req))}
	if url := strings.TrimSpace(req.ProductImageURL); url != "" {
		parts = append(parts, gateway.ImagePart(url))
	}
	if url := strings.TrimSpace(req.LogoURL); url != "" {
		parts = append(parts, gateway.ImagePart(url))
	}

	resp, err := g.gateway.ChatCompletion(ctx, gateway.ChatRequest{
		Model:      g.model,
		Messages:   []gateway.Message{{Role: "user", Parts: parts}},
		Modalities: []string{"image", "text"},
	})
	if err != nil {
		return "", err
	}

	imageURL := resp.FirstImageURL()
	if imageURL == "" {
		return "", domain.ErrNoImage
	}
	g.logger.Debug().Str("style", req.Style).Msg("adimage: generated ad image")
	return imageURL, nil
}

// Styles lists the known style keys, for validation messages.
func Styles() []string {
	keys := make([]string, 0, len(stylePrompts))
	for key := range stylePrompts {
		keys = append(keys, key)
	}
	return keys
}
