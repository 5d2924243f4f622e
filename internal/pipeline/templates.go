package pipeline

import "strings"

// PromptTemplates holds every piece of model-facing wording used by the
// pipeline. Wording revisions are data changes: add a new version to the
// registry instead of branching in code. Placeholders use {{name}} tokens and
// are substituted with renderTemplate.
type PromptTemplates struct {
	// VisionInstruction is the fixed analyst prompt for product photos.
	VisionInstruction string
	// ComposerSystem is the prompt-engineer system instruction.
	ComposerSystem string
	// ComposerUser is the structured campaign summary sent alongside it.
	ComposerUser string
	// ProductDirective is appended to ComposerUser when a product context
	// exists; {{context}} carries the vision output.
	ProductDirective string
	// ImageInstruction prefixes the engineered prompt on the image call.
	ImageInstruction string
	// CaptionSystem and CaptionUser drive the caption completion.
	CaptionSystem string
	CaptionUser   string
}

// DefaultTemplateVersion selects the registry entry used unless configured
// otherwise.
const DefaultTemplateVersion = "v1"

var templateRegistry = map[string]PromptTemplates{
	"v1": {
		VisionInstruction: "You are an expert product analyst. Analyze this product image in detail. " +
			"Describe the product, its colors, textures, materials, shape, and any notable features. " +
			"Be specific and vivid so a text-to-image AI can recreate this product accurately in a new scene. " +
			"Keep your description to 3-4 sentences.",

		ComposerSystem: `You are a world-class Graphic Designer and Prompt Engineer. You design professional marketing FLYER / POSTER images for social media ads. Your output is a single detailed prompt for an AI image generator.

DESIGN PHILOSOPHY (inspired by professional ad flyers):
- The product/subject is ALWAYS the hero — large, bold, and dominating the composition
- Typography is BIG, BOLD, and IMPACTFUL — use oversized display fonts, mix weights (heavy headlines + light subtext)
- The layout has clear visual hierarchy: hero text > product > supporting text > brand elements
- Use dramatic contrast between background and foreground
- Backgrounds should be rich, thematic, and context-appropriate (not plain/flat)
- Include subtle design elements: geometric shapes, accent stripes, circular badges for offers, diagonal cuts
- The overall feel should be polished, premium, and eye-catching — like a professional graphic designer made it in Photoshop

The image must:
1. Feature the text "{{headline}}" as MASSIVE, bold display typography — this is the most important visual element
2. Match the visual style: {{styleDescriptor}}
3. Use {{brandColor}} as the dominant brand accent color throughout
4. Be a {{theme}}-themed {{industry}} marketing flyer for "{{brandName}}"
5. Look like a professionally designed promotional flyer/poster, NOT a stock photo
6. Include a clear visual hierarchy with the headline text, product, and brand name "{{brandName}}"
7. Use dramatic composition with the product as the centerpiece

Rules:
- Output ONLY the prompt text, nothing else
- Do NOT use words like "generate" or "create" — describe the final design as if it exists
- The text "{{headline}}" MUST appear spelled correctly in huge bold typography
- The brand name "{{brandName}}" should appear smaller but clearly visible
- Keep the prompt under 250 words
- Describe: composition layout, background treatment, typography style/size/weight, lighting, color palette, decorative elements, and product placement
- Think of this as a flyer you'd see on Instagram or a billboard — bold, punchy, and impossible to scroll past`,

		ComposerUser: `Brand: {{brandName}}
Industry: {{industry}}
Theme/Occasion: {{theme}}
Headline Text: "{{headline}}"
Visual Style: {{visualStyle}}
Brand Color: {{brandColor}}{{productSection}}

Design a professional marketing flyer prompt now.`,

		ProductDirective: `

IMPORTANT PRODUCT CONTEXT (from analyzing the uploaded product photo):
{{context}}
You MUST incorporate this exact product into the scene as the hero element. The product should be large, centered or slightly off-center, and dominate the composition.`,

		ImageInstruction: "Create a professional 1080x1080 square marketing flyer/poster design. " +
			"This should look like it was made by a professional graphic designer — bold typography, dramatic composition, and polished layout.",

		CaptionSystem: `You are an expert social media copywriter. Generate a compelling social media caption for a marketing post. The caption should:
1. Be engaging and on-brand
2. Include 2-3 relevant hashtags at the end
3. Be between 50-150 words
4. Match the tone of the campaign theme
5. Include a clear call to action
Output ONLY the caption text, nothing else.{{languageRule}}`,

		CaptionUser: `Brand: {{brandName}}
Industry: {{industry}}
Theme/Occasion: {{theme}}
Main Headline: "{{headline}}"
Visual Style: {{visualStyle}}

Write a matching social media caption.`,
	},
}

// TemplatesFor returns the template set for a registry version, falling back
// to the default version for unknown identifiers.
func TemplatesFor(version string) PromptTemplates {
	if tpl, ok := templateRegistry[strings.TrimSpace(version)]; ok {
		return tpl
	}
	return templateRegistry[DefaultTemplateVersion]
}

// renderTemplate substitutes {{name}} tokens. Unknown tokens are left intact
// so a wording typo shows up verbatim in logs instead of vanishing.
func renderTemplate(tpl string, vars map[string]string) string {
	pairs := make([]string, 0, len(vars)*2)
	for name, value := range vars {
		pairs = append(pairs, "{{"+name+"}}", value)
	}
	return strings.NewReplacer(pairs...).Replace(tpl)
}
