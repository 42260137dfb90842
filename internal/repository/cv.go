// Package repository contains data access abstractions. Implementations live in
// subpackages (e.g. postgres) and contain no business logic.
package repository

import (
	"context"
	"errors"

	"cvapi/internal/model"
)

var (
	// ErrVersionConflict is returned when an update's expected version no longer matches the row.
	ErrVersionConflict = errors.New("cv version conflict")
	// ErrDuplicateSlug is returned when a slug collides with another CV.
	ErrDuplicateSlug = errors.New("duplicate slug")
)

// CVRepository persists CVs. Lookups that match no row return sql.ErrNoRows.
type CVRepository interface {
	// Create inserts the CV and its zeroed analytics row in one transaction.
	Create(ctx context.Context, cv *model.CV) (*model.CV, error)

	// FindByID returns a CV by id regardless of visibility.
	FindByID(ctx context.Context, id string) (*model.CV, error)

	// FindPublicBySlug returns the CV with the given slug only when it is public.
	FindPublicBySlug(ctx context.Context, slug string) (*model.CV, error)

	// ListByOwner returns a page of the owner's CVs, most recently updated first.
	ListByOwner(ctx context.Context, ownerID string, pq PageQuery) (*PageResult[model.CV], error)

	// Update writes every mutable column of cv when the stored version equals cv.Version.
	// The stored version is incremented. ErrVersionConflict is returned when no row matched.
	Update(ctx context.Context, cv *model.CV) (*model.CV, error)

	// UpdatePhoto sets or clears (nil) the photo key of an owned CV.
	UpdatePhoto(ctx context.Context, id, ownerID string, photoKey *string) (*model.CV, error)

	// Delete removes an owned CV and returns the number of rows removed.
	Delete(ctx context.Context, id, ownerID string) (int64, error)
}

// AnalyticsRepository maintains the per-CV counters.
type AnalyticsRepository interface {
	// Increment bumps the counter for kind, creating the row if it is missing.
	Increment(ctx context.Context, cvID string, kind model.EventKind) error

	// FindByCVID returns the counters of a CV.
	FindByCVID(ctx context.Context, cvID string) (*model.Analytics, error)
}

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
type PageResult[T any] struct {
	Items []T
	Total int
}
