package service

import (
	"context"
	"errors"

	"cvapi/internal/draft"
	"cvapi/internal/model"
)

// DraftService buffers unsaved edits of a CV per owner until they are committed or discarded.
type DraftService interface {
	Save(ctx context.Context, cvID string, patch model.CVPatch) (*draft.Draft, error)
	Get(ctx context.Context, cvID string) (*draft.Draft, error)
	Discard(ctx context.Context, cvID string) error

	// Commit applies the draft through CVService.Update and discards it on success.
	Commit(ctx context.Context, cvID string) (*model.CV, error)
}

type draftService struct {
	store *draft.Store
	cvs   CVService
}

// NewDraftService constructs a new DraftService.
func NewDraftService(store *draft.Store, cvs CVService) DraftService {
	return &draftService{store: store, cvs: cvs}
}

func (s *draftService) Save(ctx context.Context, cvID string, patch model.CVPatch) (*draft.Draft, error) {
	ident, err := requireIdentity(ctx)
	if err != nil {
		return nil, err
	}
	// Get enforces visibility; the owner check below keeps drafts to owners only.
	cv, err := s.cvs.Get(ctx, cvID)
	if err != nil {
		if errors.Is(err, ErrAccessDenied) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if cv.OwnerID != ident.UserID {
		return nil, ErrNotFound
	}

	d := s.store.Put(ident.UserID, cv.ID, patch)
	return &d, nil
}

func (s *draftService) Get(ctx context.Context, cvID string) (*draft.Draft, error) {
	ident, err := requireIdentity(ctx)
	if err != nil {
		return nil, err
	}
	d, ok := s.store.Get(ident.UserID, cvID)
	if !ok {
		return nil, ErrNotFound
	}
	return &d, nil
}

func (s *draftService) Discard(ctx context.Context, cvID string) error {
	ident, err := requireIdentity(ctx)
	if err != nil {
		return err
	}
	s.store.Discard(ident.UserID, cvID)
	return nil
}

func (s *draftService) Commit(ctx context.Context, cvID string) (*model.CV, error) {
	ident, err := requireIdentity(ctx)
	if err != nil {
		return nil, err
	}
	d, ok := s.store.Get(ident.UserID, cvID)
	if !ok {
		return nil, ErrNotFound
	}

	cv, err := s.cvs.Update(ctx, cvID, d.Patch)
	if err != nil {
		return nil, err
	}
	s.store.Discard(ident.UserID, cvID)
	return cv, nil
}
