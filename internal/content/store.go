// Package content holds the read-only content collection and its two
// accessors: list-all and get-by-kind-and-slug.
package content

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Bitlatte/showcase/internal/model"
)

var (
	ErrNotFound      = errors.New("content not found")
	ErrDuplicateItem = errors.New("duplicate content item")
)

// Snapshot is one consistent view of the collection. Generation increases
// every time the store's contents are replaced.
type Snapshot struct {
	Generation uint64
	Content    model.ContentResponse
	Items      []model.ContentItem
}

// Store serves the collection to concurrent readers and lets a loader swap
// in a new one.
type Store struct {
	mu   sync.RWMutex
	snap Snapshot
}

// NewStore validates c and returns a store holding it.
func NewStore(c model.ContentResponse) (*Store, error) {
	s := &Store{}
	if err := s.Replace(c); err != nil {
		return nil, err
	}
	return s, nil
}

// Replace validates c and, if it is valid, makes it the current collection.
// On error the previous collection stays in place.
func (s *Store) Replace(c model.ContentResponse) error {
	if err := Validate(c); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = Snapshot{
		Generation: s.snap.Generation + 1,
		Content:    c,
		Items:      c.All(),
	}
	return nil
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// All returns the full collection.
func (s *Store) All() model.ContentResponse {
	return s.Snapshot().Content
}

// Get finds the item with the given kind and slug.
func (s *Store) Get(kind model.Kind, slug string) (model.ContentItem, error) {
	snap := s.Snapshot()
	list := snap.Content.Projects
	if kind == model.KindBlog {
		list = snap.Content.Blogs
	}
	for _, item := range list {
		if item.Slug == slug {
			return item, nil
		}
	}
	return model.ContentItem{}, fmt.Errorf("%s %q: %w", kind, slug, ErrNotFound)
}

// Validate checks presence of kind, slug and title and that (kind, slug)
// is unique across the collection.
func Validate(c model.ContentResponse) error {
	seen := make(map[string]struct{})
	check := func(want model.Kind, items []model.ContentItem) error {
		for _, item := range items {
			if item.Kind != want {
				return fmt.Errorf("item %q is listed under %ss but has type %q", item.Slug, want, item.Kind)
			}
			if item.Slug == "" || item.Title == "" {
				return fmt.Errorf("%s item is missing a slug or title (slug=%q, title=%q)", want, item.Slug, item.Title)
			}
			key := string(item.Kind) + "/" + item.Slug
			if _, dup := seen[key]; dup {
				return fmt.Errorf("%s: %w", key, ErrDuplicateItem)
			}
			seen[key] = struct{}{}
		}
		return nil
	}
	if err := check(model.KindBlog, c.Blogs); err != nil {
		return err
	}
	return check(model.KindProject, c.Projects)
}
