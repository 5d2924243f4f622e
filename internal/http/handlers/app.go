package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"adforge/internal/domain"
	"adforge/internal/infra"
	"adforge/internal/middleware"
)

// CampaignRunner runs the full campaign pipeline.
type CampaignRunner interface {
	Run(ctx context.Context, req domain.CampaignRequest, locale string) (*domain.CampaignResult, error)
}

// HeadlineGenerator produces exactly three headline options.
type HeadlineGenerator interface {
	Generate(ctx context.Context, req domain.HeadlineRequest) ([]domain.Headline, error)
}

// AdImageGenerator renders one styled ad image.
type AdImageGenerator interface {
	Generate(ctx context.Context, req domain.AdImageRequest) (string, error)
}

// CampaignStore persists and lists campaign history. Nil when no database is
// configured.
type CampaignStore interface {
	Insert(ctx context.Context, rec domain.CampaignRecord) error
	ListRecent(ctx context.Context, limit int) ([]domain.CampaignRecord, error)
}

// App bundles the handler dependencies.
type App struct {
	Config    *infra.Config
	Logger    zerolog.Logger
	Pipeline  CampaignRunner
	Headlines HeadlineGenerator
	AdImages  AdImageGenerator
	Campaigns CampaignStore
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, message string) {
	a.json(w, code, map[string]string{"error": message})
}

// fail maps a pipeline or gateway error onto the HTTP contract. Upstream
// details are logged with the request ID but never echoed to the caller.
func (a *App) fail(w http.ResponseWriter, r *http.Request, err error, generic string) {
	a.Logger.Error().
		Err(err).
		Str("request_id", middleware.RequestIDFromContext(r.Context())).
		Str("path", r.URL.Path).
		Msg("request failed")

	switch {
	case errors.Is(err, domain.ErrValidation):
		a.error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrRateLimited):
		a.error(w, http.StatusTooManyRequests, "Rate limit exceeded. Please try again shortly.")
	case errors.Is(err, domain.ErrQuotaExhausted):
		a.error(w, http.StatusPaymentRequired, "AI credits exhausted. Please add credits.")
	case errors.Is(err, domain.ErrNotConfigured):
		a.error(w, http.StatusInternalServerError, "AI gateway is not configured")
	default:
		a.error(w, http.StatusInternalServerError, generic)
	}
}

func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]string{"status": "ok"})
}
