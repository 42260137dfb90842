// Package draft keeps unsaved CV edits in memory until they are committed or expire.
package draft

import (
	"sync"
	"time"

	"cvapi/internal/model"
)

// Draft is the pending patch for one CV of one owner.
type Draft struct {
	CVID      string        `json:"cv_id"`
	OwnerID   string        `json:"owner_id"`
	Patch     model.CVPatch `json:"patch"`
	UpdatedAt time.Time     `json:"updated_at"`
	ExpiresAt time.Time     `json:"expires_at"`
}

type key struct {
	owner string
	cv    string
}

// Store is a process-local draft buffer. It is safe for concurrent use.
type Store struct {
	mu     sync.Mutex
	ttl    time.Duration
	now    func() time.Time
	drafts map[key]Draft
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:    ttl,
		now:    time.Now,
		drafts: make(map[key]Draft),
	}
}

// Put merges patch into the existing draft (or starts a new one) and refreshes its expiry.
func (s *Store) Put(ownerID, cvID string, patch model.CVPatch) Draft {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	k := key{owner: ownerID, cv: cvID}

	d, ok := s.drafts[k]
	if !ok || !now.Before(d.ExpiresAt) {
		d = Draft{CVID: cvID, OwnerID: ownerID}
	}
	d.Patch = d.Patch.Merge(patch.Clone())
	d.UpdatedAt = now
	d.ExpiresAt = now.Add(s.ttl)

	s.drafts[k] = d
	return d.copy()
}

// Get returns the live draft for (ownerID, cvID).
func (s *Store) Get(ownerID, cvID string) (Draft, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key{owner: ownerID, cv: cvID}
	d, ok := s.drafts[k]
	if !ok {
		return Draft{}, false
	}
	if !s.now().Before(d.ExpiresAt) {
		delete(s.drafts, k)
		return Draft{}, false
	}
	return d.copy(), true
}

// copy detaches the draft from the stored entry so callers may modify it freely.
func (d Draft) copy() Draft {
	d.Patch = d.Patch.Clone()
	return d
}

// Discard removes the draft and reports whether one existed.
func (s *Store) Discard(ownerID, cvID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key{owner: ownerID, cv: cvID}
	_, ok := s.drafts[k]
	delete(s.drafts, k)
	return ok
}

// DiscardCV removes drafts of every owner for cvID. Used when a CV is deleted.
func (s *Store) DiscardCV(cvID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for k := range s.drafts {
		if k.cv == cvID {
			delete(s.drafts, k)
		}
	}
}

// Purge drops expired drafts and returns how many were removed.
func (s *Store) Purge() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	n := 0
	for k, d := range s.drafts {
		if !now.Before(d.ExpiresAt) {
			delete(s.drafts, k)
			n++
		}
	}
	return n
}

// Len returns the number of stored drafts, expired or not.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.drafts)
}
