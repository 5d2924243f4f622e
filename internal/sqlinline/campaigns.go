// Package sqlinline holds the SQL statements used by the repositories, kept
// in one place so they can be reviewed together.
package sqlinline

// QInsertCampaign records one successful campaign generation.
const QInsertCampaign = `
INSERT INTO campaigns (
	id, brand_name, industry, theme, headline_text,
	visual_style, brand_color, prompt, caption, image_bytes, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

// QSelectRecentCampaigns lists the newest campaign records.
const QSelectRecentCampaigns = `
SELECT id, brand_name, industry, theme, headline_text,
	visual_style, brand_color, prompt, caption, image_bytes, created_at
FROM campaigns
ORDER BY created_at DESC
LIMIT $1`
