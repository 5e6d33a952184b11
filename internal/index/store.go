package index

import (
	"errors"
	"inkwell/internal/domain/content"
)

var ErrNotFound = errors.New("index: article not found")

// Store is the slug-keyed article index. A Builder fills it and hands
// it out; after that it is read-only and safe to share between any
// number of goroutines without locking. Iteration order is the order
// slugs were first inserted.
type Store struct {
	bySlug map[string]content.Article
	order  []string
}

func newStore(capacity int) *Store {
	return &Store{
		bySlug: make(map[string]content.Article, capacity),
	}
}

// insert applies last-write-wins: inserting an existing slug replaces
// the stored article but keeps the slug's original position.
func (s *Store) insert(a content.Article) {
	if _, ok := s.bySlug[a.Slug]; !ok {
		s.order = append(s.order, a.Slug)
	}
	s.bySlug[a.Slug] = a
}

func (s *Store) Get(slug string) (content.Article, error) {
	a, ok := s.bySlug[slug]
	if !ok {
		return content.Article{}, ErrNotFound
	}
	return a, nil
}

func (s *Store) Has(slug string) bool {
	_, ok := s.bySlug[slug]
	return ok
}

func (s *Store) Len() int {
	return len(s.order)
}

// Slugs returns every slug in iteration order. The slice is a copy.
func (s *Store) Slugs() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Articles returns every article in iteration order. The slice is a
// copy; the articles themselves are plain values.
func (s *Store) Articles() []content.Article {
	out := make([]content.Article, 0, len(s.order))
	for _, slug := range s.order {
		out = append(out, s.bySlug[slug])
	}
	return out
}
