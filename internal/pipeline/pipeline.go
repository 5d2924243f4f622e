package pipeline

import (
	"context"

	"github.com/rs/zerolog"

	"adforge/internal/domain"
	"adforge/internal/gateway"
)

// Options configures a campaign pipeline.
type Options struct {
	Gateway         gateway.Completer
	TextModel       string
	ImageModel      string
	TemplateVersion string
	Styles          StyleTable
	Logger          zerolog.Logger
}

// Pipeline sequences vision analysis, prompt engineering, image generation,
// and caption writing for one campaign request. Invocations are independent
// and stateless; the pipeline holds only immutable configuration.
type Pipeline struct {
	gateway    gateway.Completer
	textModel  string
	imageModel string
	templates  PromptTemplates
	styles     StyleTable
	logger     zerolog.Logger
}

// New constructs a pipeline. Zero-value style tables and template versions
// resolve to the built-in defaults.
func New(opts Options) *Pipeline {
	styles := opts.Styles
	if styles.descriptors == nil {
		styles = DefaultStyleTable()
	}
	return &Pipeline{
		gateway:    opts.Gateway,
		textModel:  opts.TextModel,
		imageModel: opts.ImageModel,
		templates:  TemplatesFor(opts.TemplateVersion),
		styles:     styles,
		logger:     opts.Logger,
	}
}

// Run executes the full campaign pipeline. Vision, composition, and image
// synthesis are fail-fast; caption writing is best-effort and resolves to an
// empty caption on any failure. Locale only flavors the caption language.
func (p *Pipeline) Run(ctx context.Context, req domain.CampaignRequest, locale string) (*domain.CampaignResult, error) {
	productContext, err := p.analyzeProduct(ctx, req.ProductImage)
	if err != nil {
		return nil, err
	}

	prompt, err := p.composePrompt(ctx, req, productContext)
	if err != nil {
		return nil, err
	}

	imageURL, err := p.synthesizeImage(ctx, prompt)
	if err != nil {
		return nil, err
	}

	caption := p.writeCaption(ctx, req, locale)

	p.logger.Info().
		Str("brand", req.BrandName).
		Bool("has_caption", caption != "").
		Msg("pipeline: campaign generation complete")

	return &domain.CampaignResult{
		ImageURL: imageURL,
		Caption:  caption,
		Prompt:   prompt,
	}, nil
}
