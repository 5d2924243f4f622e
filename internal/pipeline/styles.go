package pipeline

import "strings"

// StyleTable maps a visual-style identifier to the descriptor phrase injected
// into the prompt-engineering instruction. The table is immutable after
// construction; unknown keys resolve to the default descriptor.
type StyleTable struct {
	descriptors map[string]string
	defaultKey  string
}

// DefaultStyleKey is the fallback used for unrecognized visual styles.
const DefaultStyleKey = "Photorealistic"

// DefaultStyleTable returns the built-in style catalog.
func DefaultStyleTable() StyleTable {
	return StyleTable{
		descriptors: map[string]string{
			"photorealistic": "photorealistic product photography, studio lighting, dramatic shadows, crisp focus, commercial advertising quality",
			"neon":           "neon lights, dark moody atmosphere, vibrant glowing colors, cyberpunk-inspired, electric accents, futuristic vibe",
			"pastel":         "soft pastel colors, minimalist, clean, gentle gradients, calming aesthetic, airy whitespace",
			"luxury":         "luxury, gold accents, rich textures, premium feel, elegant composition, dark tones, velvet-like depth",
		},
		defaultKey: strings.ToLower(DefaultStyleKey),
	}
}

// Descriptor resolves the descriptor phrase for a style key, falling back to
// the default descriptor for unknown or empty keys.
func (t StyleTable) Descriptor(key string) string {
	if desc, ok := t.descriptors[strings.ToLower(strings.TrimSpace(key))]; ok {
		return desc
	}
	return t.descriptors[t.defaultKey]
}

// Known reports whether the style key is present in the table.
func (t StyleTable) Known(key string) bool {
	_, ok := t.descriptors[strings.ToLower(strings.TrimSpace(key))]
	return ok
}
