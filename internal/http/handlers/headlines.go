package handlers

import (
	"encoding/json"
	"net/http"

	"adforge/internal/domain"
)

type headlineRequestBody struct {
	BrandName      string `json:"brandName"`
	Industry       string `json:"industry"`
	Description    string `json:"description"`
	TargetAudience string `json:"targetAudience"`
}

// GenerateHeadlines returns exactly three headline/angle pairs.
func (a *App) GenerateHeadlines(w http.ResponseWriter, r *http.Request) {
	var body headlineRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		a.error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	req := domain.HeadlineRequest{
		BrandName:      body.BrandName,
		Industry:       body.Industry,
		Description:    body.Description,
		TargetAudience: body.TargetAudience,
	}
	if err := req.Validate(); err != nil {
		a.fail(w, r, err, "invalid request")
		return
	}

	items, err := a.Headlines.Generate(r.Context(), req)
	if err != nil {
		a.fail(w, r, err, "Headline generation failed. Please try again.")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"headlines": items})
}
