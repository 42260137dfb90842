package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"

	"cvapi/internal/metrics"
	"cvapi/internal/model"
	"cvapi/internal/repository"
	"cvapi/internal/storage"
)

// PublicService serves published CVs to anonymous readers.
type PublicService interface {
	// GetBySlug returns the public projection and counts a view.
	GetBySlug(ctx context.Context, slug string) (*model.PublicCV, error)

	// RecordEvent counts a download or share of a published CV.
	RecordEvent(ctx context.Context, slug string, kind model.EventKind) error
}

// PublicServiceDeps groups the collaborators of the public service.
type PublicServiceDeps struct {
	Repo      repository.CVRepository
	Analytics repository.AnalyticsRepository
	Store     storage.Storage
	Metrics   *metrics.Domain
	Logger    hclog.Logger
	Photo     PhotoSettings
}

type publicService struct {
	repo      repository.CVRepository
	analytics repository.AnalyticsRepository
	metrics   *metrics.Domain
	log       hclog.Logger
	photoURLs photoURLs
}

// NewPublicService constructs a new PublicService.
func NewPublicService(deps PublicServiceDeps) PublicService {
	log := deps.Logger
	if log == nil {
		log = hclog.NewNullLogger()
	}
	log = log.Named("public_service")
	return &publicService{
		repo:      deps.Repo,
		analytics: deps.Analytics,
		metrics:   deps.Metrics,
		log:       log,
		photoURLs: photoURLs{store: deps.Store, expiry: deps.Photo.URLExpiry, log: log},
	}
}

func (s *publicService) find(ctx context.Context, slug string) (*model.CV, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, ErrNotFound
	}
	cv, err := s.repo.FindPublicBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find public cv: %w", err)
	}
	return cv, nil
}

func (s *publicService) GetBySlug(ctx context.Context, slug string) (*model.PublicCV, error) {
	cv, err := s.find(ctx, slug)
	if err != nil {
		return nil, err
	}

	// View counting failures are logged only.
	if err := s.analytics.Increment(ctx, cv.ID, model.EventView); err != nil {
		s.log.Warn("view_increment_failed", "cv_id", cv.ID, "error", err)
	} else {
		s.metrics.PublicEvent(string(model.EventView))
	}

	s.photoURLs.resolve(ctx, cv)
	return cv.Public(), nil
}

func (s *publicService) RecordEvent(ctx context.Context, slug string, kind model.EventKind) error {
	if kind != model.EventDownload && kind != model.EventShare {
		return newValidationError("Event type must be one of: download share")
	}
	cv, err := s.find(ctx, slug)
	if err != nil {
		return err
	}
	if err := s.analytics.Increment(ctx, cv.ID, kind); err != nil {
		return fmt.Errorf("record %s: %w", kind, err)
	}
	s.metrics.PublicEvent(string(kind))
	return nil
}
