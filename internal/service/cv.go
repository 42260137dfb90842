package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"

	"cvapi/internal/auth"
	"cvapi/internal/draft"
	"cvapi/internal/metrics"
	"cvapi/internal/model"
	"cvapi/internal/repository"
	"cvapi/internal/slug"
	"cvapi/internal/storage"
)

const (
	DefaultListLimit = 10
	MaxListLimit     = 100
)

// CVListResult is the service-level DTO for a page of CVs.
type CVListResult struct {
	Items []model.CV `json:"data"`
	Total int        `json:"total"`
}

// CVService defines the use cases for a user's CVs. The caller identity is read
// from the context (see auth.WithIdentity).
type CVService interface {
	// List returns the caller's CVs, most recently updated first.
	List(ctx context.Context, limit, offset int) (*CVListResult, error)

	// Create stores a new CV owned by the caller. Omitted fields get defaults.
	Create(ctx context.Context, in model.CVPatch) (*model.CV, error)

	// Get returns a CV that is public or owned by the caller.
	Get(ctx context.Context, id string) (*model.CV, error)

	// Update applies a partial update to one of the caller's CVs.
	Update(ctx context.Context, id string, patch model.CVPatch) (*model.CV, error)

	// Delete removes one of the caller's CVs.
	Delete(ctx context.Context, id string) error

	// Analytics returns the counters of one of the caller's CVs.
	Analytics(ctx context.Context, id string) (*model.Analytics, error)

	// UploadPhoto stores a profile photo and rolls the upload back if the CV cannot be updated.
	UploadPhoto(ctx context.Context, id string, r io.Reader, contentType string, size int64) (*model.CV, error)

	// DeletePhoto removes the profile photo.
	DeletePhoto(ctx context.Context, id string) (*model.CV, error)
}

// CVServiceDeps groups the collaborators of the CV service. Store, Drafts,
// Metrics and Logger are optional.
type CVServiceDeps struct {
	Repo      repository.CVRepository
	Analytics repository.AnalyticsRepository
	Store     storage.Storage
	Drafts    *draft.Store
	Metrics   *metrics.Domain
	Logger    hclog.Logger
	Photo     PhotoSettings
}

type cvService struct {
	repo      repository.CVRepository
	analytics repository.AnalyticsRepository
	store     storage.Storage
	drafts    *draft.Store
	metrics   *metrics.Domain
	log       hclog.Logger
	photo     PhotoSettings
	photoURLs photoURLs
	sanitizer *sanitizer
}

// NewCVService constructs a new CVService.
func NewCVService(deps CVServiceDeps) CVService {
	log := deps.Logger
	if log == nil {
		log = hclog.NewNullLogger()
	}
	log = log.Named("cv_service")
	return &cvService{
		repo:      deps.Repo,
		analytics: deps.Analytics,
		store:     deps.Store,
		drafts:    deps.Drafts,
		metrics:   deps.Metrics,
		log:       log,
		photo:     deps.Photo,
		photoURLs: photoURLs{store: deps.Store, expiry: deps.Photo.URLExpiry, log: log},
		sanitizer: newSanitizer(),
	}
}

func requireIdentity(ctx context.Context) (auth.Identity, error) {
	id, ok := auth.FromContext(ctx)
	if !ok {
		return auth.Identity{}, ErrUnauthorized
	}
	return id, nil
}

func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// loadOwned returns the CV when ownerID owns it. Unknown and foreign CVs are
// indistinguishable to the caller.
func (s *cvService) loadOwned(ctx context.Context, id, ownerID string) (*model.CV, error) {
	if !validID(id) {
		return nil, ErrNotFound
	}
	cv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find cv: %w", err)
	}
	if cv.OwnerID != ownerID {
		return nil, ErrNotFound
	}
	return cv, nil
}

func (s *cvService) prepare(cv *model.CV) error {
	cv.EnsureSequences()
	if errs := checkStructure(cv); len(errs) > 0 {
		return newValidationError(errs...)
	}
	return nil
}

func (s *cvService) recordSlug(d slug.Decision) {
	if d.Action != slug.Keep {
		s.metrics.Published(d.Action.String())
	}
}

func mapWriteError(err error) error {
	switch {
	case errors.Is(err, repository.ErrVersionConflict), errors.Is(err, repository.ErrDuplicateSlug):
		return fmt.Errorf("%w: %v", ErrConflict, err)
	default:
		return err
	}
}

func (s *cvService) List(ctx context.Context, limit, offset int) (*CVListResult, error) {
	ident, err := requireIdentity(ctx)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.ListByOwner(ctx, ident.UserID, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, fmt.Errorf("list cvs: %w", err)
	}
	for i := range res.Items {
		s.photoURLs.resolve(ctx, &res.Items[i])
	}
	return &CVListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *cvService) Create(ctx context.Context, in model.CVPatch) (*model.CV, error) {
	ident, err := requireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	cv := &model.CV{
		ID:         uuid.NewString(),
		OwnerID:    ident.UserID,
		Title:      model.DefaultTitle,
		TemplateID: model.DefaultTemplateID,
		Version:    1,
	}
	s.sanitizer.patch(in).Apply(cv)
	if err := s.prepare(cv); err != nil {
		return nil, err
	}
	if cv.Title == "" {
		cv.Title = model.DefaultTitle
	}
	if cv.TemplateID == "" {
		cv.TemplateID = model.DefaultTemplateID
	}

	// The id is generated up front so a public CV gets its slug in the same insert.
	publish := cv.IsPublic
	d := slug.Plan(cv.ID, slug.State{}, slug.Request{IsPublic: &publish, Title: &cv.Title})
	cv.Slug = d.Slug

	created, err := s.repo.Create(ctx, cv)
	if err != nil {
		return nil, fmt.Errorf("create cv: %w", mapWriteError(err))
	}

	s.metrics.CVCreated()
	s.recordSlug(d)
	s.log.Debug("cv_created", "cv_id", created.ID, "owner_id", created.OwnerID, "public", created.IsPublic)

	s.photoURLs.resolve(ctx, created)
	return created, nil
}

func (s *cvService) Get(ctx context.Context, id string) (*model.CV, error) {
	if !validID(id) {
		return nil, ErrNotFound
	}
	cv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find cv: %w", err)
	}

	if !cv.IsPublic {
		ident, ok := auth.FromContext(ctx)
		if !ok || ident.UserID != cv.OwnerID {
			return nil, ErrAccessDenied
		}
	}

	s.photoURLs.resolve(ctx, cv)
	return cv, nil
}

func (s *cvService) Update(ctx context.Context, id string, patch model.CVPatch) (*model.CV, error) {
	ident, err := requireIdentity(ctx)
	if err != nil {
		return nil, err
	}
	cur, err := s.loadOwned(ctx, id, ident.UserID)
	if err != nil {
		return nil, err
	}
	if patch.ExpectedVersion != nil && *patch.ExpectedVersion != cur.Version {
		return nil, fmt.Errorf("%w: expected version %d, current %d", ErrConflict, *patch.ExpectedVersion, cur.Version)
	}
	if patch.Empty() {
		s.photoURLs.resolve(ctx, cur)
		return cur, nil
	}

	next := *cur
	s.sanitizer.patch(patch).Apply(&next)
	if err := s.prepare(&next); err != nil {
		return nil, err
	}

	req := slug.Request{IsPublic: patch.IsPublic.Ptr()}
	if patch.Title.Set {
		req.Title = &next.Title
	}
	d := slug.Plan(cur.ID, slug.State{IsPublic: cur.IsPublic, Title: cur.Title, Slug: cur.Slug}, req)
	next.Slug = d.Slug

	updated, err := s.repo.Update(ctx, &next)
	if err != nil {
		return nil, fmt.Errorf("update cv: %w", mapWriteError(err))
	}

	s.recordSlug(d)
	if d.Action != slug.Keep {
		s.log.Info("cv_publish_changed", "cv_id", updated.ID, "action", d.Action.String())
	}

	s.photoURLs.resolve(ctx, updated)
	return updated, nil
}

func (s *cvService) Delete(ctx context.Context, id string) error {
	ident, err := requireIdentity(ctx)
	if err != nil {
		return err
	}
	cur, err := s.loadOwned(ctx, id, ident.UserID)
	if err != nil {
		return err
	}

	n, err := s.repo.Delete(ctx, cur.ID, ident.UserID)
	if err != nil {
		return fmt.Errorf("delete cv: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}

	if cur.PhotoKey != "" && s.store != nil {
		if err := s.store.Delete(ctx, cur.PhotoKey); err != nil {
			s.log.Warn("photo_cleanup_failed", "cv_id", cur.ID, "key", cur.PhotoKey, "error", err)
		}
	}
	if s.drafts != nil {
		s.drafts.DiscardCV(cur.ID)
	}
	s.metrics.CVDeleted()
	return nil
}

func (s *cvService) Analytics(ctx context.Context, id string) (*model.Analytics, error) {
	ident, err := requireIdentity(ctx)
	if err != nil {
		return nil, err
	}
	cur, err := s.loadOwned(ctx, id, ident.UserID)
	if err != nil {
		return nil, err
	}

	a, err := s.analytics.FindByCVID(ctx, cur.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &model.Analytics{CVID: cur.ID, CreatedAt: cur.CreatedAt}, nil
		}
		return nil, fmt.Errorf("find analytics: %w", err)
	}
	return a, nil
}

func (s *cvService) UploadPhoto(ctx context.Context, id string, r io.Reader, contentType string, size int64) (*model.CV, error) {
	if s.store == nil {
		return nil, ErrStorageUnavailable
	}
	ident, err := requireIdentity(ctx)
	if err != nil {
		return nil, err
	}
	cur, err := s.loadOwned(ctx, id, ident.UserID)
	if err != nil {
		return nil, err
	}

	if r == nil || size <= 0 {
		return nil, newValidationError("Photo is required")
	}
	if s.photo.MaxBytes > 0 && size > s.photo.MaxBytes {
		return nil, newValidationError(fmt.Sprintf("Photo must be at most %d bytes", s.photo.MaxBytes))
	}
	if s.photo.AllowedPrefix != "" && !strings.HasPrefix(contentType, s.photo.AllowedPrefix) {
		return nil, newValidationError("Photo must be an image")
	}

	info, err := s.store.Put(ctx, storage.PhotoKey(cur.ID), r, storage.PhotoUpload{
		CVID:        cur.ID,
		OwnerID:     ident.UserID,
		Size:        size,
		ContentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("upload photo: %w", err)
	}

	updated, err := s.repo.UpdatePhoto(ctx, cur.ID, ident.UserID, &info.Key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrNotFound
		}
		var result *multierror.Error
		result = multierror.Append(result, fmt.Errorf("save photo key: %w", err))
		if delErr := s.store.Delete(ctx, info.Key); delErr != nil {
			result = multierror.Append(result, fmt.Errorf("rollback photo upload: %w", delErr))
		}
		return nil, result.ErrorOrNil()
	}

	if cur.PhotoKey != "" && cur.PhotoKey != info.Key {
		if err := s.store.Delete(ctx, cur.PhotoKey); err != nil {
			s.log.Warn("photo_cleanup_failed", "cv_id", cur.ID, "key", cur.PhotoKey, "error", err)
		}
	}

	s.photoURLs.resolve(ctx, updated)
	return updated, nil
}

func (s *cvService) DeletePhoto(ctx context.Context, id string) (*model.CV, error) {
	if s.store == nil {
		return nil, ErrStorageUnavailable
	}
	ident, err := requireIdentity(ctx)
	if err != nil {
		return nil, err
	}
	cur, err := s.loadOwned(ctx, id, ident.UserID)
	if err != nil {
		return nil, err
	}
	if cur.PhotoKey == "" {
		return cur, nil
	}

	updated, err := s.repo.UpdatePhoto(ctx, cur.ID, ident.UserID, nil)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("clear photo key: %w", err)
	}
	if err := s.store.Delete(ctx, cur.PhotoKey); err != nil {
		s.log.Warn("photo_cleanup_failed", "cv_id", cur.ID, "key", cur.PhotoKey, "error", err)
	}
	return updated, nil
}
