package pipeline

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ppiankov/wikigraph/internal/cache"
	"github.com/ppiankov/wikigraph/internal/model"
)

// ErrSourceUnavailable marks the one hard precondition of the engine: the
// page payload for a title is not in the cache. It indicates an upstream
// pipeline defect (fetch never ran or expired), never a data-quality issue.
var ErrSourceUnavailable = errors.New("source unavailable")

// PageStore loads and saves cached page payloads
type PageStore struct {
	cache cache.Cache
	ttl   time.Duration
}

// NewPageStore creates a store over the given cache
func NewPageStore(c cache.Cache, ttl time.Duration) *PageStore {
	return &PageStore{cache: c, ttl: ttl}
}

// Load returns the cached payload for a title. A miss is wrapped in
// ErrSourceUnavailable so callers can count it as a precondition failure.
func (s *PageStore) Load(title string) (*model.Page, error) {
	data, ok := s.cache.Get(cache.PageKey(title))
	if !ok {
		return nil, fmt.Errorf("%w: %q (run fetch first)", ErrSourceUnavailable, title)
	}

	var page model.Page
	if err := json.Unmarshal(data, &page); err != nil {
		return nil, fmt.Errorf("decode cached page %q: %w", title, err)
	}
	if page.Title == "" {
		page.Title = title
	}
	return &page, nil
}

// Save stores a fetched payload
func (s *PageStore) Save(page *model.Page) error {
	data, err := json.Marshal(page)
	if err != nil {
		return fmt.Errorf("encode page %q: %w", page.Title, err)
	}
	if err := s.cache.Set(cache.PageKey(page.Title), data, s.ttl); err != nil {
		return fmt.Errorf("cache page %q: %w", page.Title, err)
	}
	return nil
}
