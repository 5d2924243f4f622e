// Package headlines produces ad headline options via a completion model with
// a deterministic template fallback, so the endpoint always returns exactly
// three headline/angle pairs.
package headlines

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"adforge/internal/domain"
	"adforge/internal/gateway"
)

// Count is the fixed number of headlines returned per request.
const Count = 3

const systemInstruction = `You are an expert marketing copywriter specializing in social media advertising. ` +
	`Generate exactly 3 distinct, high-conversion ad headlines/hooks. Each should be punchy, attention-grabbing, and under 12 words. ` +
	`Return ONLY a JSON array of 3 objects with "headline" and "angle" fields. ` +
	`The "angle" should be a 5-word max description of the marketing approach (e.g. "Emotional appeal", "Urgency driven", "Social proof"). ` +
	`No markdown, no explanation, just the JSON array.`

// Generator requests headline options from the gateway.
type Generator struct {
	gateway gateway.Completer
	model   string
	logger  zerolog.Logger
}

// NewGenerator constructs a headline generator bound to a text model.
func NewGenerator(gw gateway.Completer, model string, logger zerolog.Logger) *Generator {
	return &Generator{gateway: gw, model: model, logger: logger}
}

// Generate returns exactly Count headlines. Parse problems in the model output
// degrade to deterministic templates; upstream transport, auth, rate-limit,
// and quota failures still propagate as errors.
func (g *Generator) Generate(ctx context.Context, req domain.HeadlineRequest) ([]domain.Headline, error) {
	resp, err := g.gateway.ChatCompletion(ctx, gateway.ChatRequest{
		Model: g.model,
		Messages: []gateway.Message{
			{Role: "system", Content: systemInstruction},
			{Role: "user", Content: userMessage(req)},
		},
	})
	if err != nil {
		return nil, err
	}

	items, err := decodeHeadlines(resp.Text())
	if err != nil {
		g.logger.Warn().Err(err).Msg("headlines: model output unparseable, using templates")
		return fallbackHeadlines(req), nil
	}
	return items, nil
}

func userMessage(req domain.HeadlineRequest) string {
	return fmt.Sprintf("Brand: %s\nIndustry: %s\nProduct/Service: %s\nTarget Audience: %s\n\nGenerate 3 unique ad headlines.",
		req.BrandName, req.Industry, req.Description, req.TargetAudience)
}

// decodeHeadlines is the strict first stage: isolate the JSON array from
// incidental code-fence wrapping, then unmarshal into the typed slice. Any
// shape problem is an error so the fallback path stays independently testable.
func decodeHeadlines(raw string) ([]domain.Headline, error) {
	fragment := extractJSONArray(raw)
	if fragment == "" {
		return nil, errors.New("no JSON array in model output")
	}
	var items []domain.Headline
	if err := json.Unmarshal([]byte(fragment), &items); err != nil {
		return nil, fmt.Errorf("unmarshal headlines: %w", err)
	}
	if len(items) != Count {
		return nil, fmt.Errorf("expected %d headlines, got %d", Count, len(items))
	}
	for i, item := range items {
		if strings.TrimSpace(item.Headline) == "" || strings.TrimSpace(item.Angle) == "" {
			return nil, fmt.Errorf("headline %d has empty fields", i)
		}
	}
	return items, nil
}

// fallbackHeadlines derives a deterministic set from the request fields.
func fallbackHeadlines(req domain.HeadlineRequest) []domain.Headline {
	brand := strings.TrimSpace(req.BrandName)
	industry := coalesce(req.Industry, "Industry")
	audience := coalesce(req.TargetAudience, "Customers")
	return []domain.Headline{
		{Headline: fmt.Sprintf("%s: Redefine Your %s Experience", brand, industry), Angle: "Brand positioning"},
		{Headline: fmt.Sprintf("Why Smart %s Choose %s", audience, brand), Angle: "Social proof"},
		{Headline: fmt.Sprintf("Transform Your Life with %s Today", brand), Angle: "Urgency driven"},
	}
}

func extractJSONArray(raw string) string {
	text := trimCodeFence(strings.TrimSpace(raw))
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start < 0 || end < start {
		return ""
	}
	return text[start : end+1]
}

func trimCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```JSON")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSpace(trimmed)
	if idx := strings.LastIndex(trimmed, "```"); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	return strings.TrimSpace(trimmed)
}

func coalesce(values ...string) string {
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			return v
		}
	}
	return ""
}
