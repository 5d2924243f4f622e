package handlers

import (
	"encoding/json"
	"net/http"

	"adforge/internal/domain"
)

type adImageRequestBody struct {
	Headline        string `json:"headline"`
	Style           string `json:"style"`
	BrandName       string `json:"brandName"`
	Description     string `json:"description"`
	LogoURL         string `json:"logoUrl,omitempty"`
	ProductImageURL string `json:"productImageUrl,omitempty"`
}

// GenerateAdImage renders one styled ad image without the full pipeline.
func (a *App) GenerateAdImage(w http.ResponseWriter, r *http.Request) {
	var body adImageRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		a.error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	req := domain.AdImageRequest{
		Headline:        body.Headline,
		Style:           body.Style,
		BrandName:       body.BrandName,
		Description:     body.Description,
		LogoURL:         body.LogoURL,
		ProductImageURL: body.ProductImageURL,
	}
	if err := req.Validate(); err != nil {
		a.fail(w, r, err, "invalid request")
		return
	}

	imageURL, err := a.AdImages.Generate(r.Context(), req)
	if err != nil {
		a.fail(w, r, err, "Ad image generation failed. Please try again.")
		return
	}
	a.json(w, http.StatusOK, map[string]string{"imageUrl": imageURL})
}
