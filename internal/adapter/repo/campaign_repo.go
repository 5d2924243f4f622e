// Package repo contains the optional persistence adapters. The service is
// fully functional without a database; these are only wired when DATABASE_URL
// is configured.
package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"adforge/internal/domain"
	"adforge/internal/sqlinline"
)

// DB is the subset of pgxpool.Pool the repository needs, kept narrow so tests
// can stub it.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// CampaignRepo persists generated campaigns for the history listing.
type CampaignRepo struct {
	db DB
}

// NewCampaignRepo constructs a repository over the given pool.
func NewCampaignRepo(db DB) *CampaignRepo {
	return &CampaignRepo{db: db}
}

// Insert records one successful generation. The image itself is not stored,
// only its size; the caller keeps the data URI.
func (r *CampaignRepo) Insert(ctx context.Context, rec domain.CampaignRecord) error {
	id := rec.ID
	if id == "" {
		id = uuid.NewString()
	}
	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	_, err := r.db.Exec(ctx, sqlinline.QInsertCampaign,
		id, rec.BrandName, rec.Industry, rec.Theme, rec.HeadlineText,
		rec.VisualStyle, rec.BrandColor, rec.Prompt, rec.Caption, rec.ImageBytes, createdAt)
	if err != nil {
		return fmt.Errorf("insert campaign: %w", err)
	}
	return nil
}

// ListRecent returns up to limit campaigns, newest first.
func (r *CampaignRepo) ListRecent(ctx context.Context, limit int) ([]domain.CampaignRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.Query(ctx, sqlinline.QSelectRecentCampaigns, limit)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	defer rows.Close()

	var items []domain.CampaignRecord
	for rows.Next() {
		var rec domain.CampaignRecord
		if err := rows.Scan(&rec.ID, &rec.BrandName, &rec.Industry, &rec.Theme, &rec.HeadlineText,
			&rec.VisualStyle, &rec.BrandColor, &rec.Prompt, &rec.Caption, &rec.ImageBytes, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan campaign: %w", err)
		}
		items = append(items, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate campaigns: %w", err)
	}
	return items, nil
}
