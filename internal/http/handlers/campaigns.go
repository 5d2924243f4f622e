package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"adforge/internal/domain"
	"adforge/internal/middleware"
)

type campaignRequestBody struct {
	BrandName            string `json:"brandName"`
	Industry             string `json:"industry"`
	Theme                string `json:"theme"`
	HeadlineText         string `json:"headlineText"`
	VisualStyle          string `json:"visualStyle"`
	BrandColor           string `json:"brandColor"`
	ProductImageBase64   string `json:"productImageBase64,omitempty"`
	ProductImageMimeType string `json:"productImageMimeType,omitempty"`
}

type campaignResponseBody struct {
	ImageURL string `json:"imageUrl"`
	Caption  string `json:"caption"`
	Prompt   string `json:"prompt"`
}

// GenerateCampaign runs the full vision → prompt → image → caption pipeline
// for one submission.
func (a *App) GenerateCampaign(w http.ResponseWriter, r *http.Request) {
	var body campaignRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		a.error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	req := domain.CampaignRequest{
		BrandName:    body.BrandName,
		Industry:     body.Industry,
		Theme:        body.Theme,
		HeadlineText: body.HeadlineText,
		VisualStyle:  body.VisualStyle,
		BrandColor:   body.BrandColor,
		ProductImage: domain.ProductImage{
			Base64: body.ProductImageBase64,
			MIME:   body.ProductImageMimeType,
		},
	}
	if err := req.Validate(); err != nil {
		a.fail(w, r, err, "invalid request")
		return
	}

	locale := middleware.LocaleFromContext(r.Context())
	result, err := a.Pipeline.Run(r.Context(), req, locale)
	if err != nil {
		a.fail(w, r, err, "Campaign generation failed. Please try again.")
		return
	}

	a.recordCampaign(r, req, result)

	a.json(w, http.StatusOK, campaignResponseBody{
		ImageURL: result.ImageURL,
		Caption:  result.Caption,
		Prompt:   result.Prompt,
	})
}

// recordCampaign stores the generation in history when a database is
// configured. Persistence problems never fail the request.
func (a *App) recordCampaign(r *http.Request, req domain.CampaignRequest, result *domain.CampaignResult) {
	if a.Campaigns == nil {
		return
	}
	err := a.Campaigns.Insert(r.Context(), domain.CampaignRecord{
		BrandName:    req.BrandName,
		Industry:     req.Industry,
		Theme:        req.Theme,
		HeadlineText: req.HeadlineText,
		VisualStyle:  req.VisualStyle,
		BrandColor:   req.BrandColor,
		Prompt:       result.Prompt,
		Caption:      result.Caption,
		ImageBytes:   len(result.ImageURL),
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		a.Logger.Warn().Err(err).Msg("failed to record campaign history")
	}
}

// ListCampaigns returns recent campaign history, newest first.
func (a *App) ListCampaigns(w http.ResponseWriter, r *http.Request) {
	if a.Campaigns == nil {
		a.error(w, http.StatusNotFound, "campaign history is not enabled")
		return
	}
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	items, err := a.Campaigns.ListRecent(r.Context(), limit)
	if err != nil {
		a.fail(w, r, err, "failed to load campaign history")
		return
	}
	out := make([]map[string]any, 0, len(items))
	for _, rec := range items {
		out = append(out, map[string]any{
			"id":           rec.ID,
			"brandName":    rec.BrandName,
			"industry":     rec.Industry,
			"theme":        rec.Theme,
			"headlineText": rec.HeadlineText,
			"visualStyle":  rec.VisualStyle,
			"brandColor":   rec.BrandColor,
			"prompt":       rec.Prompt,
			"caption":      rec.Caption,
			"createdAt":    rec.CreatedAt,
		})
	}
	a.json(w, http.StatusOK, map[string]any{"items": out})
}
