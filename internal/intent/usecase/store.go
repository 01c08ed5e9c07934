package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/pKa1/loveSonia/pkg/nlp"
)

// preview is a parsed intent waiting for the user's decision.
type preview struct {
	ownerID    string
	intent     *nlp.Intent
	confidence float64
	source     string
	transcript string
	timeZone   string
	expiresAt  time.Time
}

// previewStore keeps previews for a limited time. The oldest entries are
// evicted once capacity is reached.
type previewStore struct {
	cache *expirable.LRU[string, preview]
	ttl   time.Duration
}

func newPreviewStore(capacity int, ttl time.Duration) *previewStore {
	return &previewStore{
		cache: expirable.NewLRU[string, preview](capacity, nil, ttl),
		ttl:   ttl,
	}
}

func (s *previewStore) put(p preview) (string, preview) {
	id := uuid.NewString()
	p.expiresAt = time.Now().Add(s.ttl)
	s.cache.Add(id, p)
	return id, p
}

// restore puts back a preview taken by a failed confirm.
func (s *previewStore) restore(id string, p preview) {
	p.expiresAt = time.Now().Add(s.ttl)
	s.cache.Add(id, p)
}

// get returns the preview only to its owner.
func (s *previewStore) get(id, ownerID string) (preview, bool) {
	p, ok := s.cache.Get(id)
	if !ok || p.ownerID != ownerID {
		return preview{}, false
	}
	return p, true
}

// take removes the preview and reports whether this call removed it, so a
// preview is committed at most once.
func (s *previewStore) take(id string) bool {
	return s.cache.Remove(id)
}
