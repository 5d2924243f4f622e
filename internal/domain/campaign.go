package domain

import (
	"fmt"
	"strings"
	"time"
)

// ProductImage carries an uploaded product photo as raw base64 plus its
// declared mime type.
type ProductImage struct {
	Base64 string
	MIME   string
}

// IsZero reports whether no product image was supplied.
func (p ProductImage) IsZero() bool {
	return strings.TrimSpace(p.Base64) == ""
}

// DataURI renders the image as an inline data URI suitable for a multimodal
// gateway message.
func (p ProductImage) DataURI() string {
	mime := strings.TrimSpace(p.MIME)
	if mime == "" {
		mime = "image/png"
	}
	return fmt.Sprintf("data:%s;base64,%s", mime, strings.TrimSpace(p.Base64))
}

// CampaignRequest holds the user-supplied campaign parameters. It is built
// once per submission and never mutated afterwards.
type CampaignRequest struct {
	BrandName    string
	Industry     string
	Theme        string
	HeadlineText string
	VisualStyle  string
	BrandColor   string
	ProductImage ProductImage
}

// Validate enforces the request invariants before any upstream call is made.
func (r CampaignRequest) Validate() error {
	if strings.TrimSpace(r.BrandName) == "" {
		return fmt.Errorf("%w: brandName is required", ErrValidation)
	}
	if strings.TrimSpace(r.HeadlineText) == "" {
		return fmt.Errorf("%w: headlineText is required", ErrValidation)
	}
	if !r.ProductImage.IsZero() && strings.TrimSpace(r.ProductImage.MIME) == "" {
		return fmt.Errorf("%w: productImageMimeType is required with productImageBase64", ErrValidation)
	}
	return nil
}

// CampaignResult is the composite artifact returned by the pipeline. Prompt is
// included so callers can audit what was sent to the image model. Caption may
// be empty; its absence is never a failure.
type CampaignResult struct {
	ImageURL string
	Caption  string
	Prompt   string
}

// Headline is a single generated ad headline with its marketing angle.
type Headline struct {
	Headline string `json:"headline"`
	Angle    string `json:"angle"`
}

// HeadlineRequest holds the inputs for the headline generator endpoint.
type HeadlineRequest struct {
	BrandName      string
	Industry       string
	Description    string
	TargetAudience string
}

// Validate checks the minimum fields the headline templates rely on.
func (r HeadlineRequest) Validate() error {
	if strings.TrimSpace(r.BrandName) == "" {
		return fmt.Errorf("%w: brandName is required", ErrValidation)
	}
	return nil
}

// AdImageRequest holds the inputs for the single-shot ad image endpoint.
type AdImageRequest struct {
	Headline        string
	Style           string
	BrandName       string
	Description     string
	LogoURL         string
	ProductImageURL string
}

// Validate enforces the ad image request invariants.
func (r AdImageRequest) Validate() error {
	if strings.TrimSpace(r.Headline) == "" {
		return fmt.Errorf("%w: headline is required", ErrValidation)
	}
	return nil
}

// CampaignRecord is a persisted campaign generation, kept for history when a
// database is configured.
type CampaignRecord struct {
	ID           string
	BrandName    string
	Industry     string
	Theme        string
	HeadlineText string
	VisualStyle  string
	BrandColor   string
	Prompt       string
	Caption      string
	ImageBytes   int
	CreatedAt    time.Time
}
