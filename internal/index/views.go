package index

import (
	"inkwell/internal/domain/content"
	"sort"
)

const recentLimit = 5

// Recent returns the first five articles in store iteration order.
// Iteration order is file processing order, not date order, so when the
// two differ the "latest" list is not actually chronological. Known
// limitation, kept as observable behavior.
func Recent(s *Store) []content.Article {
	arts := s.Articles()
	if len(arts) > recentLimit {
		arts = arts[:recentLimit]
	}
	return arts
}

// Chronological returns every article sorted by date token, newest
// first. The tokens are fixed width and zero padded, so plain string
// comparison gives numeric order. Equal dates keep iteration order.
func Chronological(s *Store) []content.Article {
	arts := s.Articles()
	sort.SliceStable(arts, func(i, j int) bool {
		return arts[i].Date > arts[j].Date
	})
	return arts
}
