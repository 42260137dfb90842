package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"cvapi/internal/model"
	"cvapi/internal/repository"
)

// AnalyticsPostgres is a PostgreSQL implementation of repository.AnalyticsRepository.
type AnalyticsPostgres struct {
	db *sql.DB
}

// NewAnalyticsPostgres creates a new AnalyticsPostgres repository.
func NewAnalyticsPostgres(db *sql.DB) *AnalyticsPostgres {
	return &AnalyticsPostgres{db: db}
}

var _ repository.AnalyticsRepository = (*AnalyticsPostgres)(nil)

var incrementQueries = map[model.EventKind]string{
	model.EventView: `
		INSERT INTO cv_analytics (cv_id, views, last_viewed_at) VALUES ($1, 1, now())
		ON CONFLICT (cv_id) DO UPDATE SET views = cv_analytics.views + 1, last_viewed_at = now()`,
	model.EventDownload: `
		INSERT INTO cv_analytics (cv_id, downloads) VALUES ($1, 1)
		ON CONFLICT (cv_id) DO UPDATE SET downloads = cv_analytics.downloads + 1`,
	model.EventShare: `
		INSERT INTO cv_analytics (cv_id, shares) VALUES ($1, 1)
		ON CONFLICT (cv_id) DO UPDATE SET shares = cv_analytics.shares + 1`,
}

// Increment upserts the counter for kind.
func (r *AnalyticsPostgres) Increment(ctx context.Context, cvID string, kind model.EventKind) error {
	q, ok := incrementQueries[kind]
	if !ok {
		return fmt.Errorf("unknown event kind %q", kind)
	}
	_, err := r.db.ExecContext(ctx, q, cvID)
	return err
}

// FindByCVID fetches the counters of one CV.
func (r *AnalyticsPostgres) FindByCVID(ctx context.Context, cvID string) (*model.Analytics, error) {
	const q = `
		SELECT cv_id, views, downloads, shares, last_viewed_at, created_at
		FROM cv_analytics
		WHERE cv_id = $1
	`
	var (
		a          model.Analytics
		lastViewed sql.NullTime
	)
	if err := r.db.QueryRowContext(ctx, q, cvID).Scan(
		&a.CVID,
		&a.Views,
		&a.Downloads,
		&a.Shares,
		&lastViewed,
		&a.CreatedAt,
	); err != nil {
		return nil, err
	}
	if lastViewed.Valid {
		t := lastViewed.Time
		a.LastViewedAt = &t
	}
	return &a, nil
}
